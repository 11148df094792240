package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newContactsCmd(holder *appHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Browse contacts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "books",
		Short: "List address books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			books, err := client.ListAddressBooks()
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.AddressBooks(books))
			return nil
		},
	})

	var page, limit int
	var search string
	listCmd := &cobra.Command{
		Use:   "list <addressbook>",
		Short: "List contacts with paging and search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = app.config.GetPageLimit()
			}
			contacts, err := client.ListContacts(args[0], page, limit, search)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.ContactsPage(args[0], contacts))
			return nil
		},
	}
	listCmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	listCmd.Flags().IntVarP(&limit, "limit", "l", 0, "contacts per page")
	listCmd.Flags().StringVarP(&search, "search", "s", "", "match name, email or phone")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <addressbook> <contact.vcf>",
		Short: "Show a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			contact, err := client.GetContact(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Contact(contact))
			return nil
		},
	})

	return cmd
}
