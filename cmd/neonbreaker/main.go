// neonbreaker is a neon brick breaker for the terminal.
//
// Usage:
//
//	neonbreaker play         - Play in the terminal
//	neonbreaker sim          - Run a headless autopilot game and print a summary
//	neonbreaker config       - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Use a custom breaker.yaml
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neonbreaker/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonbreaker",
	Short: "Neon Breaker - a neon brick breaker in your terminal",
	Long: `Neon Breaker bounces a ball between your paddle and a wall of neon bricks.
Clear every brick to win; let the ball fall five times and it is game over.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless autopilot game
  config   - Print the effective configuration

Examples:
  neonbreaker play
  neonbreaker play --difficulty hard
  neonbreaker sim --seed 42 --ticks 20000
  neonbreaker config --config ./breaker.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breaker.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags: file search,
// difficulty preset, then validation.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, source, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid config %s:\n%w", source, err)
	}
	return cfg, source, nil
}
