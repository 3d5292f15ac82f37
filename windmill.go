package gale

// Rotation speed bounds and adjustment step. Adjustments clamp silently;
// out-of-range is not an error.
const (
	SpeedMin  = 0.5
	SpeedMax  = 15.0
	speedStep = 0.5
)

// Windmill drawing constants.
const (
	windmillDoorHalfWidth = 8.0
	windmillDoorHeight    = 30.0
	windmillHubRadius     = 15.0
	windmillBoltRadius    = 8.0
	windmillRingRadius    = 100.0
	windmillRingWidth     = 3.0
	windmillRingSegments  = 50
	discSegments          = 48
)

// Windmill palette.
var (
	colorTower        = Color{0.55, 0.27, 0.07}
	colorDoor         = Color{0.3, 0.15, 0.05}
	colorBlade        = Color{0.95, 0.95, 0.90}
	colorBladeOutline = Color{0.7, 0.7, 0.65}
	colorHub          = Color{0.3, 0.3, 0.3}
	colorBolt         = Color{0.2, 0.2, 0.2}
	colorRing         = Color{1, 1, 0}
)

// liveWindmills counts windmill instances currently owned by a scene.
// Diagnostic only (plain counter, no atomic — the core is single-threaded).
var liveWindmills int

// LiveWindmills returns the number of windmills constructed and not yet
// released by their scene.
func LiveWindmills() int {
	return liveWindmills
}

// WindmillConfig fixes a windmill's proportions at creation.
type WindmillConfig struct {
	TowerWidth  float64
	TowerHeight float64
	BladeLength float64
	Blades      int
}

// DefaultWindmillConfig returns the proportions used for spawned windmills.
func DefaultWindmillConfig() WindmillConfig {
	return WindmillConfig{
		TowerWidth:  30,
		TowerHeight: 120,
		BladeLength: 80,
		Blades:      4,
	}
}

// Windmill is a tower with a rigid multi-blade rotor. Its position is the
// tower base center; the hub sits TowerHeight above it.
type Windmill struct {
	object
	bladeAngle    float64
	rotationSpeed float64
	rotating      bool
	cfg           WindmillConfig
	id            int
}

var _ Entity = (*Windmill)(nil)

// NewWindmill creates a rotating windmill at pos with speed 2.0. identity
// must come from the owning scene's generator (Scene.NextIdentity) so it is
// unique and never reused within that scene's lifetime.
func NewWindmill(pos Vec2, identity int, cfg WindmillConfig) *Windmill {
	if cfg.Blades < 1 {
		cfg.Blades = 1
	}
	liveWindmills++
	return &Windmill{
		object:        object{pos: pos},
		rotationSpeed: 2.0,
		rotating:      true,
		cfg:           cfg,
		id:            identity,
	}
}

// release drops the windmill from the live-instance count. Called exactly
// once by the owning scene when the windmill is discarded.
func (w *Windmill) release() {
	liveWindmills--
}

// Identity returns the scene-issued identity. Identities are monotonic and
// never reused, so a stale one can never alias a later windmill.
func (w *Windmill) Identity() int {
	return w.id
}

// Speed returns the current rotation speed in degrees per tick.
func (w *Windmill) Speed() float64 {
	return w.rotationSpeed
}

// BladeAngle returns the rotor angle in [0, 360).
func (w *Windmill) BladeAngle() float64 {
	return w.bladeAngle
}

// Rotating reports whether the rotor is turning.
func (w *Windmill) Rotating() bool {
	return w.rotating
}

// ToggleRotation flips the rotor between rotating and stopped.
func (w *Windmill) ToggleRotation() {
	w.rotating = !w.rotating
}

// IncreaseSpeed raises the rotation speed one step, clamped to SpeedMax.
func (w *Windmill) IncreaseSpeed() {
	w.rotationSpeed += speedStep
	if w.rotationSpeed > SpeedMax {
		w.rotationSpeed = SpeedMax
	}
}

// DecreaseSpeed lowers the rotation speed one step, clamped to SpeedMin.
func (w *Windmill) DecreaseSpeed() {
	w.rotationSpeed -= speedStep
	if w.rotationSpeed < SpeedMin {
		w.rotationSpeed = SpeedMin
	}
}

// Update advances the rotor by the rotation speed, wrapping at 360. A
// paused simulation or a stopped rotor leaves the angle untouched.
func (w *Windmill) Update(env *Env) {
	if env.Paused || !w.rotating {
		return
	}
	w.bladeAngle = wrapDegrees(w.bladeAngle + w.rotationSpeed)
}

// Draw emits tower, rotor, hub, then — only for the selected windmill —
// the highlight ring. Later shapes overdraw earlier ones, so the order is
// part of the look.
func (w *Windmill) Draw(dst Surface, env *Env) {
	if w.hidden {
		return
	}
	w.drawTower(dst)
	w.drawBlades(dst)
	w.drawHub(dst)
	if env.selectedID == w.id {
		w.drawSelectionRing(dst)
	}
}

// hub returns the rotor center: tower-base anchor plus tower height.
func (w *Windmill) hub() Vec2 {
	return Vec2{X: w.pos.X, Y: w.pos.Y + w.cfg.TowerHeight}
}

func (w *Windmill) drawTower(dst Surface) {
	x, y := w.pos.X, w.pos.Y
	halfBase := w.cfg.TowerWidth / 2
	halfTop := w.cfg.TowerWidth / 3

	dst.SetFill(colorTower)
	dst.FillPolygon([]Vec2{
		{x - halfBase, y},
		{x + halfBase, y},
		{x + halfTop, y + w.cfg.TowerHeight},
		{x - halfTop, y + w.cfg.TowerHeight},
	})

	dst.SetFill(colorDoor)
	dst.FillPolygon([]Vec2{
		{x - windmillDoorHalfWidth, y},
		{x + windmillDoorHalfWidth, y},
		{x + windmillDoorHalfWidth, y + windmillDoorHeight},
		{x - windmillDoorHalfWidth, y + windmillDoorHeight},
	})
}

// bladeShape is the untransformed blade outline, rooted at the hub and
// extending along +y, as fractions of the blade length where marked.
func bladeShape(length float64) [5]Vec2 {
	return [5]Vec2{
		{0, 0},
		{-5, length * 0.3},
		{-3, length},
		{3, length},
		{5, length * 0.3},
	}
}

func (w *Windmill) drawBlades(dst Surface) {
	hub := w.hub()
	step := 360 / float64(w.cfg.Blades)

	pts := make([]Vec2, 5)
	for i := 0; i < w.cfg.Blades; i++ {
		// Whole-rotor rotation plus this blade's fixed offset: the blades
		// are evenly spaced and spin as one rigid assembly.
		angle := DegToRad(w.bladeAngle + step*float64(i))
		for j, p := range bladeShape(w.cfg.BladeLength) {
			pts[j] = Rotate(p, angle).Add(hub)
		}
		dst.SetFill(colorBlade)
		dst.FillPolygon(pts)
		dst.SetStroke(colorBladeOutline, 1)
		dst.StrokePolyline(pts, true)
	}
}

func (w *Windmill) drawHub(dst Surface) {
	hub := w.hub()
	dst.SetFill(colorHub)
	dst.FillDisc(hub, windmillHubRadius)
	dst.SetFill(colorBolt)
	dst.FillDisc(hub, windmillBoltRadius)
}

func (w *Windmill) drawSelectionRing(dst Surface) {
	dst.SetStroke(colorRing, windmillRingWidth)
	dst.StrokePolyline(DiscPoints(w.hub(), windmillRingRadius, windmillRingSegments), true)
}
