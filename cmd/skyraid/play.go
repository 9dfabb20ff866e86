package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/engine"
	"github.com/vovakirdan/skyraid/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play skyraid in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/W/Up   - Flap (hold or repeat)
  F/X/Click    - Fire
  Enter/R      - Start, or restart after game over
  Ctrl+S       - Save a screenshot to ~/.skyraid/screenshots
  Q/Ctrl+C     - Quit

The game uses the alternate screen, so logs are discarded unless
--log-file is given.

Examples:
  skyraid play
  skyraid play --seed 42
  skyraid play --log-file skyraid.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("skyraid: cannot open log file: %w", openErr)
		}
		defer f.Close()

		if logger, err = newLogger(f, "skyraid"); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctrl := engine.NewController(engine.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      ctrl.Seed(),
	}
	logger.Debug("session configured", "seed", rc.Seed, "screen", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(ctrl, rc)
}
