package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/platform/tui"
	"github.com/vovakirdan/ringflight/internal/registry"
	"github.com/vovakirdan/ringflight/internal/sound"
	"github.com/vovakirdan/ringflight/internal/storage"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a course",
	Long: `Fly the selected course in the terminal.

Controls:
  Up/W       - Climb
  Down/S     - Dive
  Space      - Launch
  R          - Restart
  P/Esc      - Pause
  H          - Run history for this session
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  ringflight play
  ringflight play --course slalom
  ringflight play --autopilot
  ringflight play --config ./my-flight.yaml --log-file flight.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot fly after launch")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	flightCfg, err := loadFlight(logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(flagCourse, flightCfg)
	if err != nil {
		return fmt.Errorf("cannot create course: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	journal, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	var player *sound.Player
	if flightCfg.Audio.Enabled {
		player = sound.NewPlayer(flightCfg.Audio.Volume, logger)
		if err := player.Open(); err != nil {
			logger.Warn("audio disabled", "error", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	logger.Info("starting flight", "course", flagCourse, "autopilot", flagAutopilot)

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}, tui.Options{
		Journal:   journal,
		Sound:     player,
		Logger:    logger,
		Autopilot: flagAutopilot,
		HoldTicks: flightCfg.Controls.HoldTicks,
	})
}
