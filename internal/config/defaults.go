package config

import (
	_ "embed"
)

//go:embed defaults/flight.yaml
var defaultFlightYAML []byte

// DefaultFlightConfig returns the built-in configuration.
// It mirrors defaults/flight.yaml and is used if the embedded file cannot be parsed.
func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		Field: FieldConfig{
			Count:       50,
			Spacing:     150,
			StartOffset: -150,
			AltitudeA:   0,
			AltitudeB:   12,
			MajorRadius: 8,
			TubeRadius:  0.7,
		},
		Craft: CraftConfig{
			Speed: 1.5,
		},
		Controls: ControlsConfig{
			Sensitivity: 0.25,
			HoldTicks:   6,
		},
		Display: DisplayConfig{
			ViewBehind:   30,
			ViewAhead:    330,
			VerticalSpan: 40,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlightYAML
}
