// Package cli provides the command-line interface for lutforge.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darkframe/lutforge/internal/preset"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	// Global flags
	logLevel      string
	presetsDBPath string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lutforge",
		Short: "Parametric photo color grading and 3D LUT export",
		Long: `Lutforge applies parametric color and tone adjustments to photos and
bakes the resulting transform into 3D LUT files (.cube, .3dl, .csp)
for use in video editors and grading suites.

Adjustments can be given inline as flags, or stored as named presets
and reused across the adjust, histogram, and lut commands.`,
		Version:      Version,
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&presetsDBPath, "presets-db", "", "path to the preset database (default: user config dir)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("lutforge %s (commit %s)\n", Version, GitCommit))

	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(histogramCmd)
	rootCmd.AddCommand(lutCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. Output goes to stderr so stdout stays
// clean for command output and the MCP protocol.
func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lutforge",
		Level:  hclog.LevelFromString(logLevel),
		Output: os.Stderr,
	})
}

// openStore opens the preset database, creating the default config directory
// on first use.
func openStore() (*preset.Store, error) {
	path := presetsDBPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot locate config dir: %w", err)
		}
		dir = filepath.Join(dir, "lutforge")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create config dir: %w", err)
		}
		path = filepath.Join(dir, "presets.db")
	}
	return preset.Open(path)
}
