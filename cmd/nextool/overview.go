package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nextool/internal/tasks"
	"nextool/nextcloud"
)

func newOverviewCmd(holder *appHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Fetch notes, calendars, boards and address books at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}

			var (
				notes     []nextcloud.Note
				calendars []nextcloud.Calendar
				boards    []nextcloud.Board
				books     []nextcloud.AddressBook
			)

			err = tasks.All(context.Background(),
				func(context.Context) error {
					var err error
					notes, err = client.ListNotes()
					return err
				},
				func(context.Context) error {
					var err error
					calendars, err = client.ListCalendars()
					return err
				},
				func(context.Context) error {
					var err error
					boards, err = client.ListBoards()
					return err
				},
				func(context.Context) error {
					var err error
					books, err = client.ListAddressBooks()
					return err
				},
			)
			if err != nil {
				return err
			}

			fmt.Print(app.renderer.Notes(notes))
			fmt.Println()
			fmt.Print(app.renderer.Calendars(calendars))
			fmt.Println()
			fmt.Print(app.renderer.Boards(boards))
			fmt.Println()
			fmt.Print(app.renderer.AddressBooks(books))
			return nil
		},
	}
}
