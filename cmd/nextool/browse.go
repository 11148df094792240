package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nextool/internal/tui"
	"nextool/nextcloud"
)

func newBrowseCmd(holder *appHolder) *cobra.Command {
	return &cobra.Command{
		Use:       "browse <kind>",
		Short:     "Interactively browse files, notes, calendars, contacts, boards or recipes",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"files", "notes", "calendars", "contacts", "boards", "recipes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := holder.getWithClient()
			if err != nil {
				return err
			}

			switch args[0] {
			case "files":
				return tui.Browse("Files", func() ([]tui.Item, error) {
					entries, err := client.ListFiles("")
					if err != nil {
						return nil, err
					}
					items := make([]tui.Item, 0, len(entries))
					for _, entry := range entries {
						detail := "file"
						if entry.IsDirectory {
							detail = "directory"
						}
						items = append(items, tui.Item{Name: entry.Name, Detail: detail})
					}
					return items, nil
				})

			case "notes":
				return tui.Browse("Notes", func() ([]tui.Item, error) {
					notes, err := client.ListNotes()
					if err != nil {
						return nil, err
					}
					items := make([]tui.Item, 0, len(notes))
					for _, note := range notes {
						items = append(items, tui.Item{Name: note.Title, Detail: note.Category})
					}
					return items, nil
				})

			case "calendars":
				return tui.Browse("Calendars", func() ([]tui.Item, error) {
					calendars, err := client.ListCalendars()
					if err != nil {
						return nil, err
					}
					items := make([]tui.Item, 0, len(calendars))
					for _, cal := range calendars {
						items = append(items, tui.Item{Name: cal.Name, Detail: cal.Href})
					}
					return items, nil
				})

			case "contacts":
				return tui.Browse("Contacts", func() ([]tui.Item, error) {
					books, err := client.ListAddressBooks()
					if err != nil {
						return nil, err
					}
					var items []tui.Item
					for _, book := range books {
						page, err := client.ListContacts(book.Name, 1, nextcloud.DefaultContactPageLimit, "")
						if err != nil {
							return nil, err
						}
						for _, contact := range page.Contacts {
							items = append(items, tui.Item{Name: contact.FN, Detail: contact.Email})
						}
					}
					return items, nil
				})

			case "boards":
				return tui.Browse("Boards", func() ([]tui.Item, error) {
					boards, err := client.ListBoards()
					if err != nil {
						return nil, err
					}
					items := make([]tui.Item, 0, len(boards))
					for _, board := range boards {
						detail := ""
						if board.Archived {
							detail = "archived"
						}
						items = append(items, tui.Item{Name: board.Title, Detail: detail})
					}
					return items, nil
				})

			case "recipes":
				return tui.Browse("Recipes", func() ([]tui.Item, error) {
					recipes, err := client.ListRecipes()
					if err != nil {
						return nil, err
					}
					items := make([]tui.Item, 0, len(recipes))
					for _, recipe := range recipes {
						items = append(items, tui.Item{Name: recipe.Name, Detail: recipe.Description})
					}
					return items, nil
				})
			}

			return fmt.Errorf("unknown kind %q", args[0])
		},
	}
}
