package gale

// Cloud drift and wrap bounds. A cloud leaving the right edge re-enters at
// the mirrored left edge with a fresh altitude inside the band.
const (
	cloudWrapRight = 450.0
	cloudWrapLeft  = -450.0
)

// CloudBand is the vertical band clouds occupy. Wrapping and spawning both
// pick an altitude uniformly inside it.
var CloudBand = Range{Min: 150, Max: 280}

// Cloud is a puff cluster drifting rightward at a constant per-tick speed.
type Cloud struct {
	object
	speed float64
	size  float64
}

var _ Entity = (*Cloud)(nil)

// NewCloud creates a cloud centered at pos. speed is the horizontal drift
// per tick and must be positive; size scales the puff cluster. Neither is
// validated beyond being finite — callers pass what they want drawn.
func NewCloud(pos Vec2, speed, size float64) *Cloud {
	return &Cloud{
		object: object{pos: pos},
		speed:  speed,
		size:   size,
	}
}

// Speed returns the horizontal drift per tick.
func (c *Cloud) Speed() float64 {
	return c.speed
}

// SetSpeed replaces the drift speed.
func (c *Cloud) SetSpeed(s float64) {
	c.speed = s
}

// Size returns the puff scale fixed at creation.
func (c *Cloud) Size() float64 {
	return c.size
}

// Update drifts the cloud rightward. Crossing the right wrap bound resets
// x to the mirrored left bound on the same tick (no overshoot carries
// over) and re-randomizes the altitude within CloudBand.
func (c *Cloud) Update(env *Env) {
	if env.Paused {
		return
	}
	c.pos.X += c.speed
	if c.pos.X > cloudWrapRight {
		c.pos.X = cloudWrapLeft
		c.pos.Y = randBetween(env.Rand, CloudBand.Min, CloudBand.Max)
	}
}

// cloudPuffs are the per-puff center offsets and radii, as fractions of
// the cloud size.
var cloudPuffs = [5]struct {
	dx, dy, r float64
}{
	{0, 0, 1.0},
	{0.8, 0.3, 0.9},
	{-0.8, 0.3, 0.7},
	{0.4, -0.2, 0.6},
	{-0.4, -0.2, 0.6},
}

// Draw emits the five overlapping white puff discs.
func (c *Cloud) Draw(dst Surface, env *Env) {
	if c.hidden {
		return
	}
	dst.SetFill(ColorWhite)
	for _, p := range cloudPuffs {
		dst.FillDisc(Vec2{
			X: c.pos.X + p.dx*c.size,
			Y: c.pos.Y + p.dy*c.size,
		}, p.r*c.size)
	}
}
