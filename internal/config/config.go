// Package config loads the nextool configuration file. The config
// holds the Nextcloud connection settings; the password is optional
// here because credentials can also come from the keyring or the
// environment (see internal/credentials).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"

	_ "embed"
)

var configOnce sync.Once

var globalConfig *Config

var globalErr error

var customConfigPath string // set via --config flag

//go:embed config.sample.json
var sampleConfig []byte

const (
	configDirName  = "nextool"
	configFileName = "config.json"
	configDirPerm  = 0755
	configFilePerm = 0600
)

// Config is the application configuration.
type Config struct {
	URL      string `json:"url" validate:"omitempty,url"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`

	// Only for development against self-signed instances.
	InsecureSkipVerify bool `json:"insecure_skip_verify,omitempty"`

	PageLimit  int    `json:"page_limit,omitempty" validate:"omitempty,min=1,max=200"`
	DateFormat string `json:"date_format,omitempty"`

	// Optional YAML file with widget display settings.
	WidgetSettings string `json:"widget_settings,omitempty"`

	// Path of the sqlite database holding tool results for restore.
	ResultsDB string `json:"results_db,omitempty"`
}

func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetPageLimit returns the contact page size, defaulting to 30.
func (c *Config) GetPageLimit() int {
	if c.PageLimit <= 0 {
		return 30
	}
	return c.PageLimit
}

// GetDateFormat returns the display date format, defaulting to
// yyyy-mm-dd.
func (c *Config) GetDateFormat() string {
	if c.DateFormat == "" {
		return "2006-01-02"
	}
	return c.DateFormat
}

// GetResultsDBPath returns the restore database path, defaulting to a
// file next to the config.
func (c *Config) GetResultsDBPath() (string, error) {
	if c.ResultsDB != "" {
		return c.ResultsDB, nil
	}
	path, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "results.db"), nil
}

// SetCustomPath overrides the default config location. Must be called
// before the first Get.
func SetCustomPath(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		customConfigPath = filepath.Join(path, configFileName)
		return
	}
	customConfigPath = path
}

// Get loads the config once and caches it for the process lifetime.
func Get() (*Config, error) {
	configOnce.Do(func() {
		globalConfig, globalErr = load()
	})
	return globalConfig, globalErr
}

// Path returns the active config file path.
func Path() (string, error) {
	if customConfigPath != "" {
		return customConfigPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

func load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the sample so the user has something to
		// edit, then continue with its empty values so env and
		// keyring credentials still work.
		_ = writeSample(path)
		data = sampleConfig
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid JSON in config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed for %s: %w", path, err)
	}

	return &cfg, nil
}

func writeSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, sampleConfig, configFilePerm)
}
