package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nextool/internal/config"
	"nextool/internal/credentials"
	"nextool/internal/widgets"
	"nextool/nextcloud"
)

// App holds the lazily built client and renderer shared by the
// subcommands.
type App struct {
	config   *config.Config
	client   *nextcloud.Client
	renderer *widgets.Renderer
}

// NewApp loads configuration and widget settings. The Nextcloud
// client is built on first use so commands that never touch the
// network (credentials, help) work without connection settings.
func NewApp() (*App, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, err
	}

	settings := widgets.DefaultSettings()
	if cfg.WidgetSettings != "" {
		settings, err = widgets.LoadSettings(cfg.WidgetSettings)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		config:   cfg,
		renderer: widgets.NewRenderer(settings),
	}, nil
}

// Client resolves credentials and builds the Nextcloud client.
// Missing connection settings fail here, before any network call.
func (a *App) Client() (*nextcloud.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	creds := credentials.Resolve(a.config)
	if !creds.Complete() {
		return nil, fmt.Errorf("missing connection settings: set url and username in %s and store a password with 'nextool credentials set' (or use %s): %w",
			mustConfigPath(), credentials.EnvPassword, nextcloud.ErrMissingConfig)
	}

	var opts []nextcloud.Option
	if a.config.InsecureSkipVerify {
		opts = append(opts, nextcloud.WithInsecureTLS())
	}

	client, err := nextcloud.New(creds.URL, creds.Username, creds.Password, opts...)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

func mustConfigPath() string {
	path, err := config.Path()
	if err != nil {
		return "the config file"
	}
	return path
}

func main() {
	// A .env next to the binary feeds NEXTOOL_* variables.
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:           "nextool",
		Short:         "Nextcloud assistant tools",
		Long:          "Nextcloud files, notes, calendars, contacts, Deck boards and recipes as CLI commands and MCP tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	cobra.OnInitialize(func() {
		config.SetCustomPath(configPath)
	})

	app := &appHolder{}

	rootCmd.AddCommand(
		newServeCmd(app),
		newFilesCmd(app),
		newNotesCmd(app),
		newCalendarCmd(app),
		newContactsCmd(app),
		newDeckCmd(app),
		newRecipesCmd(app),
		newBrowseCmd(app),
		newOverviewCmd(app),
		newCredentialsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println("Error:", err)
		os.Exit(1)
	}
}

// appHolder defers App construction until a command actually runs, so
// --config is honored.
type appHolder struct {
	app *App
}

func (h *appHolder) get() (*App, error) {
	if h.app != nil {
		return h.app, nil
	}
	app, err := NewApp()
	if err != nil {
		return nil, err
	}
	h.app = app
	return app, nil
}

func (h *appHolder) getWithClient() (*App, *nextcloud.Client, error) {
	app, err := h.get()
	if err != nil {
		return nil, nil, err
	}
	client, err := app.Client()
	if err != nil {
		return nil, nil, err
	}
	return app, client, nil
}
