package main

import (
	"log"

	"github.com/spf13/cobra"

	"nextool/internal/mcpserver"
	"nextool/internal/results"
)

func newServeCmd(holder *appHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Expose every Nextcloud operation as an MCP tool over stdio.

Rendered outputs are stored in a local sqlite database so a host can
replay a previous result with the nc_restore tool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := holder.get()
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			var store *results.Store
			if dbPath, err := app.config.GetResultsDBPath(); err == nil {
				store, err = results.Open(dbPath)
				if err != nil {
					// Serve without replay rather than refusing to start.
					log.Printf("Warning: result storage unavailable: %v", err)
					store = nil
				}
			}
			if store != nil {
				defer store.Close()
			}

			return mcpserver.New(client, app.renderer, store).ServeStdio()
		},
	}
}
