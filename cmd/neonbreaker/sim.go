package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neonbreaker/internal/game"
)

var (
	flagTicks   int
	flagAim     float64
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play one game without a terminal. An autopilot steers the paddle with the
same direction intents the keyboard produces. The run stops when the game is
won or lost, or after --ticks ticks, and prints a summary.

The same --seed always produces the same game.

Examples:
  neonbreaker sim
  neonbreaker sim --seed 7 --ticks 50000
  neonbreaker sim --difficulty hard --verbose`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Maximum number of ticks to simulate")
	simCmd.Flags().Float64Var(&flagAim, "aim", 30, "Max random offset the autopilot aims away from the ball")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log game events to stderr")
}

// simSummary counts what happened during a headless run.
type simSummary struct {
	WallBounces int
	PaddleHits  int
	Bricks      int
	LivesLost   int
}

func (s *simSummary) add(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventWallBounce:
			s.WallBounces++
		case game.EventPaddleHit:
			s.PaddleHits++
		case game.EventBrickDestroyed:
			s.Bricks++
		case game.EventLifeLost:
			s.LivesLost++
		case game.EventPhaseChanged:
		}
	}
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonbreaker-sim",
		Level:           level,
	})
	logger.Debug("config loaded", "source", source, "seed", seed)

	g := game.New(cfg, seed)
	pilot := game.NewAutopilot(seed, flagAim)

	var (
		summary simSummary
		last    game.StepResult
	)
	start := time.Now()
	for range flagTicks {
		pilot.Steer(g, last)
		last = g.Step()
		summary.add(last.Events)

		for _, e := range last.Events {
			switch e.Kind {
			case game.EventPhaseChanged:
				logger.Info("phase changed", "tick", last.Tick, "from", e.From, "to", e.To, "trigger", e.Trigger)
			case game.EventBrickDestroyed:
				logger.Debug("brick destroyed", "tick", last.Tick, "row", e.Row, "col", e.Col, "score", last.Score)
			case game.EventLifeLost:
				logger.Debug("life lost", "tick", last.Tick, "lives", last.Lives)
			case game.EventWallBounce, game.EventPaddleHit:
			}
		}

		if last.Phase.Terminal() {
			break
		}
	}
	elapsed := time.Since(start)

	snap := g.Snapshot()
	fmt.Println("Neon Breaker simulation")
	fmt.Println("-----------------------")
	fmt.Printf("Seed:         %d\n", seed)
	fmt.Printf("Config:       %s\n", source)
	fmt.Printf("Ticks:        %d\n", snap.Tick)
	fmt.Printf("Phase:        %s\n", snap.Phase)
	fmt.Printf("Score:        %d\n", snap.Score)
	fmt.Printf("Lives:        %d\n", snap.Lives)
	fmt.Printf("Bricks left:  %d/%d\n", snap.BricksRemaining, snap.BricksTotal)
	fmt.Printf("Bricks hit:   %d\n", summary.Bricks)
	fmt.Printf("Paddle hits:  %d\n", summary.PaddleHits)
	fmt.Printf("Wall bounces: %d\n", summary.WallBounces)
	fmt.Printf("Lives lost:   %d\n", summary.LivesLost)
	fmt.Printf("State hash:   %016x\n", snap.Hash())
	fmt.Printf("Elapsed:      %s\n", elapsed.Round(time.Microsecond))
}
