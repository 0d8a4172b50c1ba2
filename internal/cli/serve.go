package cli

import (
	"github.com/darkframe/lutforge/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Run the MCP (Model Context Protocol) server, exposing the adjustment
engine, histograms, presets, and LUT export as tools over JSON-RPC on
stdin/stdout. Logs go to stderr so stdout stays clean for the protocol.

Configure it in an MCP client as:

  lutforge serve --log-level info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		logger.Info("starting MCP server", "version", Version)
		return server.New(store, logger).Run()
	},
}
