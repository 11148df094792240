package credentials

import (
	"nextool/internal/config"
)

// Source indicates where credentials were found.
type Source string

const (
	SourceKeyring Source = "keyring"
	SourceEnv     Source = "env"
	SourceConfig  Source = "config"
	SourceNone    Source = "none"
)

// Credentials is a resolved set of connection settings.
type Credentials struct {
	URL      string
	Username string
	Password string
	Source   Source
}

// Resolve finds connection settings with the priority order keyring >
// environment > config file. URL and username come from the config or
// the environment; only the password has a keyring home.
//
// An incomplete result is returned as-is with Source set; the caller
// decides whether missing fields are fatal (they are, before any
// network call).
func Resolve(cfg *config.Config) *Credentials {
	creds := &Credentials{
		URL:      cfg.URL,
		Username: cfg.Username,
		Source:   SourceNone,
	}

	if creds.URL == "" {
		creds.URL = EnvURLValue()
	}
	if creds.Username == "" {
		creds.Username = EnvUsernameValue()
	}

	if creds.Username != "" && IsAvailable() {
		if password, err := Get(creds.Username); err == nil && password != "" {
			creds.Password = password
			creds.Source = SourceKeyring
			return creds
		}
	}

	if password := EnvPasswordValue(); password != "" {
		creds.Password = password
		creds.Source = SourceEnv
		return creds
	}

	if cfg.Password != "" {
		creds.Password = cfg.Password
		creds.Source = SourceConfig
	}

	return creds
}

// Complete reports whether every field needed for a connection is set.
func (c *Credentials) Complete() bool {
	return c.URL != "" && c.Username != "" && c.Password != ""
}
