package gale

// Celestial animation constants: the per-tick phase advance and the ray
// ornamentation geometry (rays run from radius+rayInner to radius+rayOuter).
const (
	celestialPhaseStep = 0.3
	celestialRayCount  = 12
	celestialRayInner  = 5.0
	celestialRayOuter  = 15.0
)

// CelestialBody is the single sun/moon of a scene. Whether it reads as sun
// or moon is not intrinsic: the day flag on Env decides the ray
// ornamentation, and one instance serves both appearances.
type CelestialBody struct {
	object
	radius float64
	phase  float64
	color  Color
}

var _ Entity = (*CelestialBody)(nil)

// NewCelestialBody creates a body of the given radius and fixed color
// centered at pos.
func NewCelestialBody(pos Vec2, radius float64, color Color) *CelestialBody {
	return &CelestialBody{
		object: object{pos: pos},
		radius: radius,
		color:  color,
	}
}

// Radius returns the body radius fixed at creation.
func (b *CelestialBody) Radius() float64 {
	return b.radius
}

// Phase returns the animation phase in [0, 360).
func (b *CelestialBody) Phase() float64 {
	return b.phase
}

// Color returns the fill color fixed at creation.
func (b *CelestialBody) Color() Color {
	return b.color
}

// Update advances the animation phase, wrapping at 360. Gated by both the
// pause flag and the global celestial-animation toggle.
func (b *CelestialBody) Update(env *Env) {
	if env.Paused || !env.AnimateCelestial {
		return
	}
	b.phase = wrapDegrees(b.phase + celestialPhaseStep)
}

// Draw fills the body disc in its fixed color. In day mode it first emits
// the radiating ray segments, rotated by the animation phase so the
// celestial toggle has a visible effect.
func (b *CelestialBody) Draw(dst Surface, env *Env) {
	if b.hidden {
		return
	}
	if env.Day {
		dst.SetStroke(b.color, 1)
		for i := 0; i < celestialRayCount; i++ {
			angle := DegToRad(360/float64(celestialRayCount)*float64(i) + b.phase)
			inner := Rotate(Vec2{X: b.radius + celestialRayInner}, angle).Add(b.pos)
			outer := Rotate(Vec2{X: b.radius + celestialRayOuter}, angle).Add(b.pos)
			dst.StrokePolyline([]Vec2{inner, outer}, false)
		}
	}
	dst.SetFill(b.color)
	dst.FillDisc(b.pos, b.radius)
}
