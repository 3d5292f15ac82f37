package gale

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Day/night backdrop palettes.
var (
	skyDay      = Color{0.53, 0.81, 0.92}
	skyNight    = Color{0.04, 0.04, 0.12}
	groundDay   = Color{0.13, 0.55, 0.13}
	groundNight = Color{0.08, 0.23, 0.08}
)

// groundTop is the upper edge of the ground band; the band runs from there
// down to the bottom of the world.
const groundTop = -150.0

// skyTransitionSeconds is how long the backdrop takes to ease between the
// day and night palettes after a mode flip.
const skyTransitionSeconds = 0.8

// Sky renders the backdrop: a full-extent sky fill and the ground band.
// The mode flag on Env flips instantly (entities react on the same tick);
// the backdrop colors ease between palettes with a tween so the flip reads
// as dusk or dawn rather than a hard cut.
type Sky struct {
	day   bool
	blend float64 // 0 = night palette, 1 = day palette
	tween *gween.Tween
}

// NewSky creates a backdrop already settled on the given mode.
func NewSky(day bool) *Sky {
	s := &Sky{day: day}
	if day {
		s.blend = 1
	}
	return s
}

// SetDay starts the palette transition toward the given mode. Setting the
// mode it is already in (or already heading to) is a no-op.
func (s *Sky) SetDay(day bool) {
	if s.day == day {
		return
	}
	s.day = day
	target := float64(0)
	if day {
		target = 1
	}
	s.tween = gween.New(float32(s.blend), float32(target), skyTransitionSeconds, ease.OutQuad)
}

// Day reports the mode the backdrop is in or transitioning toward.
func (s *Sky) Day() bool {
	return s.day
}

// Update advances the palette transition by dt seconds.
func (s *Sky) Update(dt float64) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(float32(dt))
	s.blend = float64(v)
	if done {
		s.tween = nil
	}
}

// lerpColor blends from a (t=0) to b (t=1), exact at both endpoints.
func lerpColor(a, b Color, t float64) Color {
	u := 1 - t
	return Color{
		R: a.R*u + b.R*t,
		G: a.G*u + b.G*t,
		B: a.B*u + b.B*t,
	}
}

// SkyColor returns the current blended sky color.
func (s *Sky) SkyColor() Color {
	return lerpColor(skyNight, skyDay, s.blend)
}

// GroundColor returns the current blended ground color.
func (s *Sky) GroundColor() Color {
	return lerpColor(groundNight, groundDay, s.blend)
}

// Draw fills the sky over the whole world extent, then the ground band.
// Entities draw on top of both.
func (s *Sky) Draw(dst Surface) {
	dst.SetFill(s.SkyColor())
	dst.FillPolygon([]Vec2{
		{WorldLeft, WorldBottom},
		{WorldRight, WorldBottom},
		{WorldRight, WorldTop},
		{WorldLeft, WorldTop},
	})

	dst.SetFill(s.GroundColor())
	dst.FillPolygon([]Vec2{
		{WorldLeft, WorldBottom},
		{WorldRight, WorldBottom},
		{WorldRight, groundTop},
		{WorldLeft, groundTop},
	})
}
