package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/engine"
	"github.com/vovakirdan/skyraid/internal/games/skyraid"
)

var (
	flagTicks     int
	flagShowFrame bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Run one game without a terminal UI. A simple autopilot flaps toward
the next gap and fires at enemies in its lane. Ticks run back to back,
not in real time.

The same seed and config always produce the same outcome.

Examples:
  skyraid sim --seed 7
  skyraid sim --ticks 10000 --seed 7 --show`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagShowFrame, "show", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "skyraid")
	if err != nil {
		return err
	}

	ctrl := engine.NewController(engine.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
		Manual: true,
	})
	defer ctrl.Stop()

	ctrl.Press(core.ActionStart)
	for i := 0; i < flagTicks; i++ {
		flap, fire := skyraid.Autopilot(ctrl.Snapshot(), cfg)
		if flap {
			ctrl.Hold(core.ActionFlap)
		} else {
			ctrl.Release(core.ActionFlap)
		}
		if fire {
			ctrl.Press(core.ActionFire)
		}
		if !ctrl.Advance() {
			break
		}
	}

	snap := ctrl.Snapshot()
	out := cmd.OutOrStdout()

	if flagShowFrame {
		screen := core.NewScreen(core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH)
		skyraid.Render(snap, cfg.Playfield, screen)
		fmt.Fprintln(out, screen.String())
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "seed:   %d\n", ctrl.Seed())
	fmt.Fprintf(out, "ticks:  %d\n", snap.Tick)
	fmt.Fprintf(out, "score:  %d\n", snap.Score)
	fmt.Fprintf(out, "phase:  %s\n", snap.Phase)
	if snap.Phase == skyraid.PhaseOver {
		fmt.Fprintf(out, "cause:  %s\n", snap.Cause)
	}
	return nil
}
