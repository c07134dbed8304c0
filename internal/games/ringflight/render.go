package ringflight

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/flight"
)

// Visual characters for rendering
const (
	CraftChar   = '▶'
	CrashChar   = '✸'
	TrailChar   = '─'
	RimChar     = '█'
	HoleChar    = '┊'
	HorizonChar = '·'
)

// edgeMargin keeps the craft this many vertical units away from the top and
// bottom of the view before the camera starts following it.
const edgeMargin = 4.0

// camera projects the side view: the forward axis runs left to right,
// altitude runs bottom to top.
type camera struct {
	area        core.Rect
	craftZ      float64
	behind      float64
	top         float64 // Altitude at the top edge of the area
	unitsPerCol float64
	unitsPerRow float64
}

func newCamera(area core.Rect, disp config.DisplayConfig, craft flight.Vec3, field config.FieldConfig) camera {
	half := disp.VerticalSpan / 2
	mid := (field.AltitudeA + field.AltitudeB) / 2
	reach := math.Max(half-edgeMargin, 0)
	centerY := core.ClampF(mid, craft.Y-reach, craft.Y+reach)

	return camera{
		area:        area,
		craftZ:      craft.Z,
		behind:      disp.ViewBehind,
		top:         centerY + half,
		unitsPerCol: (disp.ViewBehind + disp.ViewAhead) / float64(core.Max(area.W, 1)),
		unitsPerRow: disp.VerticalSpan / float64(core.Max(area.H, 1)),
	}
}

// col returns the screen column for forward coordinate z.
func (c camera) col(z float64) int {
	return c.area.X + int(math.Round((c.craftZ-z+c.behind)/c.unitsPerCol))
}

// row returns the screen row for altitude y.
func (c camera) row(y float64) int {
	return c.area.Y + int(math.Round((c.top-y)/c.unitsPerRow))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 5 {
		dst.DrawText(0, 0, "Too small")
		return
	}

	snap := g.ctrl.Snapshot()
	area := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	cam := newCamera(area, g.cfg.Display, snap.Craft, g.cfg.Field)

	g.drawHorizon(dst, cam)
	for _, r := range snap.Rings {
		g.drawRing(dst, cam, r)
	}
	g.drawCraft(dst, cam, snap)
	g.drawHUD(dst, snap)

	switch snap.State {
	case flight.StateIdle:
		g.drawCenteredMessage(dst, g.title, "SPACE to launch  |  W/S or arrows to pitch")
	case flight.StateCrashed:
		g.drawCenteredMessage(dst, "CRASHED",
			fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", g.lastRun, g.best))
	}
}

// drawHorizon marks altitude zero so climbs and dives read at a glance.
func (g *Game) drawHorizon(dst *core.Screen, cam camera) {
	y := cam.row(0)
	if !cam.area.Contains(0, y) {
		return
	}
	for x := cam.area.X; x < cam.area.Right(); x += 2 {
		dst.SetColor(x, y, HorizonChar, core.ColorGround)
	}
}

// drawRing renders a ring edge-on: two rim marks joined by the hole.
func (g *Game) drawRing(dst *core.Screen, cam camera, r flight.Ring) {
	x := cam.col(r.Center.Z)
	if x < cam.area.X || x >= cam.area.Right() {
		return
	}

	color := core.ColorRing
	switch g.outcomes[r.Index] {
	case flight.OutcomeScored:
		color = core.ColorRingPassed
	case flight.OutcomeCrashed:
		color = core.ColorRingHit
	case flight.OutcomeMissed:
		color = core.ColorRingMissed
	}

	topRim := cam.row(r.Center.Y + r.MajorRadius)
	bottomRim := cam.row(r.Center.Y - r.MajorRadius)
	for y := topRim + 1; y < bottomRim; y++ {
		if cam.area.Contains(x, y) {
			dst.SetColor(x, y, HoleChar, color)
		}
	}
	for _, y := range []int{topRim, bottomRim} {
		if cam.area.Contains(x, y) {
			dst.SetColor(x, y, RimChar, color)
		}
	}
}

func (g *Game) drawCraft(dst *core.Screen, cam camera, snap flight.Snapshot) {
	x := cam.col(snap.Craft.Z)
	y := core.Clamp(cam.row(snap.Craft.Y), cam.area.Y, cam.area.Bottom()-1)

	if snap.State == flight.StateCrashed {
		dst.SetColor(x, y, CrashChar, core.ColorRingHit)
		return
	}

	if snap.State == flight.StateRunning {
		for i := 1; i <= 3; i++ {
			if cam.area.Contains(x-i, y) && dst.Get(x-i, y) == ' ' {
				dst.SetColor(x-i, y, TrailChar, core.ColorGray)
			}
		}
	}
	dst.SetColor(x, y, CraftChar, core.ColorCraft)
}

func (g *Game) drawHUD(dst *core.Screen, snap flight.Snapshot) {
	next := "--"
	if snap.NextRing >= 0 {
		next = fmt.Sprintf("%.0f", snap.Craft.Z-snap.Rings[snap.NextRing].Center.Z)
	}

	remaining := 0
	for _, r := range snap.Rings {
		if !r.Checked {
			remaining++
		}
	}

	hud := fmt.Sprintf(" %s | Score: %d | Best: %d | Rings left: %d | Next: %s | Alt: %.1f ",
		g.title, snap.Score, g.best, remaining, next, snap.Craft.Y)
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextColor(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorHUD)
}
