// Package registry provides a global registry of flight courses.
// Courses register themselves in init() functions, allowing the CLI
// to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/flight"
)

// Game is the interface the platform drives once per frame.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the course identifier (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to the launch pad and adapts to the screen size.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick using the sampled input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current platform-level game state.
	State() core.GameState

	// Flight exposes the simulation for headless drivers.
	Flight() *flight.Controller

	// Events drains the simulation events produced since the previous call.
	Events() []flight.Event
}

// CourseInfo contains metadata about a registered course.
type CourseInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory builds a game for a course from the loaded base configuration.
type Factory func(cfg config.FlightConfig) (Game, error)

type entry struct {
	info    CourseInfo
	factory Factory
}

var (
	courses = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a course to the registry.
// Typically called from an init() function.
// Panics if a course with the same ID is already registered.
func Register(info CourseInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := courses[info.ID]; exists {
		panic(fmt.Sprintf("registry: course %q already registered", info.ID))
	}
	courses[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered courses, sorted by ID.
func List() []CourseInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CourseInfo, 0, len(courses))
	for _, e := range courses {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the game for a course from cfg.
// Returns an error if the course is unknown or its layout is invalid.
func Create(id string, cfg config.FlightConfig) (Game, error) {
	mu.RLock()
	e, ok := courses[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown course %q", id)
	}

	g, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: course %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a course with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := courses[id]
	return ok
}
