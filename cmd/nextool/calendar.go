package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarCmd(holder *appHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage calendars and events",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			calendars, err := client.ListCalendars()
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Calendars(calendars))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "events <calendar> <start> <end>",
		Short: "List events in a time range (timestamps: YYYYMMDDTHHMMSSZ)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			events, err := client.ListEvents(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Events(args[0], events))
			return nil
		},
	})

	var description string
	createCmd := &cobra.Command{
		Use:   "create <calendar> <title> <start> <end>",
		Short: "Create an event (timestamps: YYYYMMDDTHHMMSSZ)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			uid, err := client.CreateEvent(args[0], args[1], args[2], args[3], description)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Success("created event " + uid + ".ics in " + args[0]))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&description, "description", "d", "", "event description")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <calendar> <event.ics>",
		Short: "Print an event's ICS data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			ics, err := client.GetEvent(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Print(ics)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <calendar> <event.ics>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			if err := client.DeleteEvent(args[0], args[1]); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success("deleted event " + args[1]))
			return nil
		},
	})

	return cmd
}
