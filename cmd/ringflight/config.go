package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/games/ringflight"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the flight configuration as YAML after applying --config and --course.
Save the output to ~/.ringflight/configs/flight.yaml to customize it.

Examples:
  ringflight config
  ringflight config --course slalom
  ringflight config --defaults > flight.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadFlight(logger)
	if err != nil {
		return err
	}
	ringflight.ApplyCourse(flagCourse, &cfg)

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
