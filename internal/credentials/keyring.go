package credentials

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name under which nextool stores the
// Nextcloud app password.
const KeyringService = "nextool"

// Set stores a password in the OS keyring.
func Set(username, password string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if err := keyring.Set(KeyringService, username, password); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// Get retrieves a password from the OS keyring.
func Get(username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username cannot be empty")
	}

	password, err := keyring.Get(KeyringService, username)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("no credentials found in keyring for user %q", username)
		}
		return "", fmt.Errorf("failed to retrieve credentials from keyring: %w", err)
	}
	return password, nil
}

// Delete removes a password from the OS keyring.
func Delete(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if err := keyring.Delete(KeyringService, username); err != nil {
		if err == keyring.ErrNotFound {
			return fmt.Errorf("no credentials found in keyring for user %q", username)
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks whether a keyring backend is accessible. A probe
// for a known-missing entry returns ErrNotFound when the keyring
// works and something else when it does not.
func IsAvailable() bool {
	_, err := keyring.Get("nextool-keyring-probe", "probe")
	return err == keyring.ErrNotFound
}
