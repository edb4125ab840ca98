// Package cmd implements unholyc's cobra command tree.
package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unholy-lang/unholy/internal/config"
	"github.com/unholy-lang/unholy/internal/obslog"
)

var (
	configPath    string
	correlationID string
	log           *obslog.Logger
	cfg           config.Config
)

var rootCmd = &cobra.Command{
	Use:   "unholyc",
	Short: "unholyc drives the Unholy scanner and parser",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		correlationID = uuid.NewString()
		log = obslog.Default().WithCorrelationID(correlationID)
		return nil
	},
}

// Execute runs the root command, parsing os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML driver configuration file")
}
