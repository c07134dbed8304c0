package ringflight

import (
	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/registry"
)

// DefaultCourse is the course played when none is selected.
const DefaultCourse = "classic"

// course is a fixed ring layout applied on top of the loaded configuration.
type course struct {
	info  registry.CourseInfo
	apply func(cfg *config.FlightConfig)
}

var builtinCourses = []course{
	{
		info: registry.CourseInfo{
			ID:          "classic",
			Title:       "Classic",
			Description: "Rings alternate between two altitudes, exactly as configured",
		},
		apply: func(cfg *config.FlightConfig) {},
	},
	{
		info: registry.CourseInfo{
			ID:          "slalom",
			Title:       "Slalom",
			Description: "Tighter spacing with a taller climb between rings",
		},
		apply: func(cfg *config.FlightConfig) {
			cfg.Field.Spacing = 120
			cfg.Field.AltitudeB = cfg.Field.AltitudeA + 18
		},
	},
	{
		info: registry.CourseInfo{
			ID:          "wide",
			Title:       "Wide Open",
			Description: "Large rings with a thin rim, for warming up",
		},
		apply: func(cfg *config.FlightConfig) {
			cfg.Field.MajorRadius = 11
			cfg.Field.TubeRadius = 0.5
		},
	},
}

// ApplyCourse overlays a built-in course on cfg. Unknown IDs leave cfg unchanged
// and return false.
func ApplyCourse(id string, cfg *config.FlightConfig) bool {
	for _, c := range builtinCourses {
		if c.info.ID == id {
			c.apply(cfg)
			return true
		}
	}
	return false
}

// Register the courses with the registry
func init() {
	for _, c := range builtinCourses {
		registry.Register(c.info, func(cfg config.FlightConfig) (registry.Game, error) {
			c.apply(&cfg)
			g, err := New(c.info.ID, c.info.Title, cfg)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}
