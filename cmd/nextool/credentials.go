package main

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nextool/internal/credentials"
)

func newCredentialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage the stored password",
		Long: `Securely manage the Nextcloud password using the system keyring.

The password is resolved in priority order:
  1. System keyring (most secure)
  2. Environment variable ` + credentials.EnvPassword + `
  3. Config file (least secure)

An app password is recommended over the account password.`,
	}

	cmd.AddCommand(newCredentialsSetCmd())
	cmd.AddCommand(newCredentialsDeleteCmd())

	return cmd
}

func newCredentialsSetCmd() *cobra.Command {
	var promptPassword bool

	cmd := &cobra.Command{
		Use:   "set <username> [password]",
		Short: "Store the password in the system keyring",
		Long: `Store the Nextcloud password in the system keyring.

With --prompt the password is read interactively, keeping it out of
shell history.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			var password string
			switch {
			case promptPassword:
				fmt.Printf("Password for %s: ", username)
				passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimSpace(string(passwordBytes))
			case len(args) == 2:
				password = args[1]
			default:
				return fmt.Errorf("provide a password argument or use --prompt")
			}

			if password == "" {
				return fmt.Errorf("password must not be empty")
			}

			if err := credentials.Set(username, password); err != nil {
				return fmt.Errorf("failed to store password: %w", err)
			}
			fmt.Printf("Stored password for %s in the system keyring\n", username)
			return nil
		},
	}

	cmd.Flags().BoolVar(&promptPassword, "prompt", false, "prompt for the password interactively (recommended)")
	return cmd
}

func newCredentialsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Remove the password from the system keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credentials.Delete(args[0]); err != nil {
				return fmt.Errorf("failed to delete password: %w", err)
			}
			fmt.Printf("Removed password for %s from the system keyring\n", args[0])
			return nil
		},
	}
}
