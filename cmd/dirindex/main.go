package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/srashe/dirindex/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "dirindex",
	Short:   "HTTP server for browsable directory listings",
	Long: `Dirindex serves browsable directory listings over HTTP, with
HTML, plain text, and JSON representations negotiated per request.
Files inside the listed tree are served as-is.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		setupLogging(cfg.Log)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("root", "", "directory to serve (default: ., env: DIRINDEX_LISTING_ROOT)")
}

// loadConfig reads the configuration for cmd, honoring an explicit
// --config file when one was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var files []string
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		files = []string{configFile}
	}
	return config.Load(files, cmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
