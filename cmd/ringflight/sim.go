package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringflight/internal/flight"
	"github.com/vovakirdan/ringflight/internal/registry"
	"github.com/vovakirdan/ringflight/internal/sim"
)

var (
	flagSimPitch  float64
	flagSimLevel  bool
	flagSimOffset float64
	flagSimTicks  uint64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Fly a course headless and print a ring report",
	Long: `Fly the selected course without a terminal UI and print the outcome of
every ring. By default the autopilot steers for each ring's center; --offset
aims above (positive) or below it. With --constant the craft holds --pitch
for the whole flight instead.

Examples:
  ringflight sim
  ringflight sim --course slalom --offset 7.5
  ringflight sim --constant --pitch -0.1`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagSimLevel, "constant", false, "Hold --pitch instead of using the autopilot")
	simCmd.Flags().Float64Var(&flagSimPitch, "pitch", 0, "Pitch input for --constant, in [-1, 1]")
	simCmd.Flags().Float64Var(&flagSimOffset, "offset", 0, "Autopilot aim above the ring center")
	simCmd.Flags().Uint64Var(&flagSimTicks, "max-ticks", 1_000_000, "Stop after this many ticks")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
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

	var pilot sim.Pilot = flight.Autopilot{Offset: flagSimOffset}
	if flagSimLevel {
		pilot = sim.ConstantPilot(flagSimPitch)
	}

	res := sim.Run(game, pilot, flagSimTicks)
	logger.Debug("simulation finished", "course", res.Course, "score", res.Score, "ticks", res.Ticks)

	sim.Render(os.Stdout, res)
	return nil
}
