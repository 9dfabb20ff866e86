// skyraid is a terminal side-scroller: fly through obstacle gaps and shoot
// down enemies that enter from every edge.
//
// Usage:
//
//	skyraid play             - Play in this terminal
//	skyraid serve            - Start SSH server for remote play
//	skyraid sim              - Run a headless autopilot game and print the outcome
//	skyraid config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set redraw rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyraid",
	Short: "Skyraid - a side-scrolling shooter for your terminal",
	Long: `Skyraid is a single-player arcade game played in the terminal.
Hold flap to climb, let gravity pull you down, thread the gaps between
obstacle pairs and shoot the enemies that drift in from every edge.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Headless autopilot run for reproducibility checks
  config   - Print the effective configuration

Examples:
  skyraid play
  skyraid play --seed 42 --config ./skyraid.yaml
  skyraid serve --ssh :2222
  skyraid sim --ticks 5000 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration named by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("skyraid: %w", err)
	}
	return cfg, nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w *os.File, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("skyraid: invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
