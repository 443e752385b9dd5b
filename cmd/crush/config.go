package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-crush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after the config file, .env and CRUSH_*
environment variables have been applied, followed by the resolved paths.

Examples:
  crush config show
  crush config show --config ./my-crush.yaml > ~/.crush/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyPathFlags(&cfg)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Printf("# save file: %s\n", cfg.SavePath())
	fmt.Printf("# database: %s\n", cfg.DatabasePath())
	fmt.Printf("# log file: %s\n", cfg.LogPath())
	fmt.Print(string(data))
	return nil
}
