// ringflight is a terminal arcade game: pitch a craft up and down to fly
// it through a line of rings.
//
// Usage:
//
//	ringflight play           - Fly a course in the terminal
//	ringflight serve          - Host the game over SSH
//	ringflight sim            - Fly a course headless and print a ring report
//	ringflight courses        - List available courses
//	ringflight config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom flight config YAML
//	--course <id>        - Course to fly (default: classic)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/games/ringflight"
	"github.com/vovakirdan/ringflight/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagCourse   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringflight",
	Short: "Ring Flight - thread a craft through rings in your terminal",
	Long: `Ring Flight is a terminal arcade game. The craft flies forward on its own;
you pitch it up and down to pass through the center of each ring.
Touching a rim ends the flight.

Available commands:
  play     - Fly a course interactively
  serve    - Host the game over SSH
  sim      - Fly a course headless and print a ring report
  courses  - List available courses
  config   - Print the effective configuration

Examples:
  ringflight play
  ringflight play --course slalom
  ringflight serve --ssh :2222
  ringflight sim --course wide`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flight config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCourse, "course", ringflight.DefaultCourse, "Course to fly")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Interactive commands own the terminal,
// so without --log-file they discard logs instead of writing to stderr.
// The returned func closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "ringflight",
	})
	return logger, closeFn, nil
}

// loadFlight loads the base flight config and checks the selected course.
func loadFlight(logger *log.Logger) (config.FlightConfig, error) {
	cfg, source, err := config.LoadFlight(flagConfig)
	if err != nil {
		return config.FlightConfig{}, err
	}
	logger.Debug("loaded config", "source", source)

	if !registry.Exists(flagCourse) {
		return config.FlightConfig{}, fmt.Errorf("unknown course %q (run 'ringflight courses')", flagCourse)
	}
	return cfg, nil
}
