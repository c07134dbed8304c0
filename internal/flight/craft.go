package flight

// Craft is the player's aircraft.
type Craft struct {
	Position Vec3
	Pitch    float64 // Pitch applied on the most recent advance
}

// ResetCraft returns a craft parked at initial with no pitch memory.
func ResetCraft(initial Vec3) Craft {
	return Craft{Position: initial}
}

// Advance moves the craft one tick: speed units toward -Z and pitch units down.
// Positive pitch pushes the nose down. The lateral coordinate is never touched.
func Advance(c Craft, speed, pitch float64) Craft {
	c.Position.Z -= speed
	c.Position.Y -= pitch
	c.Pitch = pitch
	return c
}
