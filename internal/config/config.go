// Package config provides YAML-based configuration loading for the flight
// game: ring field layout, craft motion, controls, display and audio.
package config

import (
	"fmt"

	"github.com/vovakirdan/ringflight/internal/flight"
)

// FlightConfig contains all configuration for a flight.
type FlightConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Craft    CraftConfig    `yaml:"craft"`
	Controls ControlsConfig `yaml:"controls"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`
}

// FieldConfig defines the ring field layout.
type FieldConfig struct {
	Count       int     `yaml:"count"`
	Spacing     float64 `yaml:"spacing"`
	StartOffset float64 `yaml:"start_offset"`
	AltitudeA   float64 `yaml:"altitude_a"`
	AltitudeB   float64 `yaml:"altitude_b"`
	MajorRadius float64 `yaml:"major_radius"`
	TubeRadius  float64 `yaml:"tube_radius"`
}

// CraftConfig defines craft motion.
type CraftConfig struct {
	Speed float64 `yaml:"speed"` // Forward units per tick
	Start Point   `yaml:"start"`
}

// Point is a YAML-friendly 3D position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ControlsConfig defines how input maps to pitch.
type ControlsConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // Vertical units per tick at full input
	HoldTicks   int     `yaml:"hold_ticks"`  // Ticks a pitch key stays held after a press
}

// DisplayConfig defines the side-view camera window.
type DisplayConfig struct {
	ViewBehind   float64 `yaml:"view_behind"`   // Forward units shown behind the craft
	ViewAhead    float64 `yaml:"view_ahead"`    // Forward units shown ahead of the craft
	VerticalSpan float64 `yaml:"vertical_span"` // Vertical units covered by the play area
}

// AudioConfig defines sound cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// FieldSpec converts the field section into the simulation's layout type.
func (c FlightConfig) FieldSpec() flight.FieldSpec {
	return flight.FieldSpec{
		Count:       c.Field.Count,
		Spacing:     c.Field.Spacing,
		StartOffset: c.Field.StartOffset,
		AltitudeA:   c.Field.AltitudeA,
		AltitudeB:   c.Field.AltitudeB,
		MajorRadius: c.Field.MajorRadius,
		TubeRadius:  c.Field.TubeRadius,
	}
}

// Settings converts the config into controller settings.
func (c FlightConfig) Settings() flight.Settings {
	return flight.Settings{
		Field:       c.FieldSpec(),
		Start:       flight.Vec3{X: c.Craft.Start.X, Y: c.Craft.Start.Y, Z: c.Craft.Start.Z},
		Speed:       c.Craft.Speed,
		Sensitivity: c.Controls.Sensitivity,
	}
}

// Validate checks the config for values the game cannot run with.
func (c FlightConfig) Validate() error {
	if err := c.FieldSpec().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Craft.Speed <= 0 {
		return fmt.Errorf("config: craft speed must be positive, got %g", c.Craft.Speed)
	}
	if c.Controls.Sensitivity <= 0 {
		return fmt.Errorf("config: sensitivity must be positive, got %g", c.Controls.Sensitivity)
	}
	if c.Controls.HoldTicks < 0 {
		return fmt.Errorf("config: hold_ticks must not be negative, got %d", c.Controls.HoldTicks)
	}
	if c.Display.ViewAhead <= 0 || c.Display.ViewBehind < 0 || c.Display.VerticalSpan <= 0 {
		return fmt.Errorf("config: display window must be positive")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}
