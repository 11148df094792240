package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFilesCmd(holder *appHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Browse and manage files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			entries, err := client.ListFiles(path)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Files(path, entries))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			content, err := client.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Print(content)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "put <path> [content]",
		Short: "Write a file (content from argument or stdin)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			var content string
			if len(args) == 2 {
				content = args[1]
			} else {
				data, err := os.ReadFile("/dev/stdin")
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				content = string(data)
			}
			if err := client.WriteFile(args[0], content); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success("wrote " + args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			if err := client.DeleteFile(args[0]); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success("deleted " + args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			if err := client.CreateDirectory(args[0]); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success("created directory " + args[0]))
			return nil
		},
	})

	return cmd
}
