package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

func newNotesCmd(holder *appHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			notes, err := client.ListNotes()
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Notes(notes))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			note, err := client.GetNote(id)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Note(note))
			return nil
		},
	})

	var category string
	createCmd := &cobra.Command{
		Use:   "create <title> <content>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			note, err := client.CreateNote(args[0], args[1], category)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("created note %d: %s", note.ID, note.Title)))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&category, "category", "c", "", "note category")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteNote(id); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("deleted note %d", id)))
			return nil
		},
	})

	return cmd
}
