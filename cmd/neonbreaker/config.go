package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neonbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config file
search and the difficulty preset, as YAML. The source file is printed as a
comment on the first line.

Config files are searched in this order:
  --config <path>
  ~/.neonbreaker/configs/breaker.yaml
  ./configs/breaker.yaml
  built-in defaults

Examples:
  neonbreaker config
  neonbreaker config --difficulty easy > ~/.neonbreaker/configs/breaker.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data) //nolint:errcheck // stdout write failures have nowhere to go
}
