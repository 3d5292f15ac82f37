package gale

// Scene owns every entity in the simulation. Ownership is exclusive and
// tree-shaped: an entity belongs to exactly one scene, the typed windmill
// and cloud views reference the same objects without owning them, and
// Clear releases everything exactly once.
//
// Update and draw both run in insertion order; draw order is the z-order,
// later-added entities paint on top.
type Scene struct {
	entities  []Entity
	windmills []*Windmill
	clouds    []*Cloud
	celestial *CelestialBody

	// nextID is the windmill identity generator. Monotonic for the life of
	// the scene; Clear does not rewind it, so identities never recur.
	nextID int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// NextIdentity issues the next windmill identity. Identities start at 1
// and are never reused, even across Clear.
func (s *Scene) NextIdentity() int {
	s.nextID++
	return s.nextID
}

// AddWindmill takes ownership of w, appending it to the master order and
// the windmill view.
func (s *Scene) AddWindmill(w *Windmill) {
	s.windmills = append(s.windmills, w)
	s.entities = append(s.entities, w)
}

// AddCloud takes ownership of c, appending it to the master order and the
// cloud view.
func (s *Scene) AddCloud(c *Cloud) {
	s.clouds = append(s.clouds, c)
	s.entities = append(s.entities, c)
}

// SetCelestialBody takes ownership of b. A scene holds at most one body:
// setting a second replaces the first in place, keeping its z-order slot,
// so the prior instance is released rather than left dangling in the
// master order.
func (s *Scene) SetCelestialBody(b *CelestialBody) {
	if s.celestial != nil {
		for i, e := range s.entities {
			if e == s.celestial {
				s.entities[i] = b
				break
			}
		}
	} else {
		s.entities = append(s.entities, b)
	}
	s.celestial = b
}

// CelestialBody returns the scene's sun/moon, or nil.
func (s *Scene) CelestialBody() *CelestialBody {
	return s.celestial
}

// Windmills returns the windmill view. The returned slice MUST NOT be
// mutated; the scene owns the entities it references.
func (s *Scene) Windmills() []*Windmill {
	return s.windmills
}

// Clouds returns the cloud view. The returned slice MUST NOT be mutated.
func (s *Scene) Clouds() []*Cloud {
	return s.clouds
}

// Len returns the number of owned entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Selected resolves the env's 1-based windmill selection against the
// windmill view. Returns nil when nothing valid is selected.
func (s *Scene) Selected(env *Env) *Windmill {
	if env.SelectedWindmill < 1 || env.SelectedWindmill > len(s.windmills) {
		return nil
	}
	return s.windmills[env.SelectedWindmill-1]
}

// UpdateAll advances every entity one tick, in insertion order. Pause is
// honored inside each entity's Update, uniformly.
func (s *Scene) UpdateAll(env *Env) {
	for _, e := range s.entities {
		e.Update(env)
	}
}

// DrawAll draws every entity in insertion order. The current selection is
// resolved to an identity first so the selected windmill — and only that
// one — emits its highlight ring.
func (s *Scene) DrawAll(dst Surface, env *Env) {
	env.selectedID = 0
	if sel := s.Selected(env); sel != nil {
		env.selectedID = sel.Identity()
	}
	for _, e := range s.entities {
		e.Draw(dst, env)
	}
}

// Clear releases every owned entity and empties all views, leaving the
// scene in the freshly constructed state (except the identity generator,
// which never rewinds). The selection is zeroed so it cannot dangle.
// Clearing an already empty scene is a no-op; nothing double-releases.
func (s *Scene) Clear(env *Env) {
	for _, w := range s.windmills {
		w.release()
	}
	s.entities = nil
	s.windmills = nil
	s.clouds = nil
	s.celestial = nil
	env.SelectedWindmill = 0
	env.selectedID = 0
}

// Populate fills the scene with the program-start layout: three windmills
// on the ground line, three clouds in the drift band, and the sun/moon.
func (s *Scene) Populate() {
	s.AddWindmill(NewWindmill(Vec2{-250, -200}, s.NextIdentity(), WindmillConfig{
		TowerWidth: 30, TowerHeight: 120, BladeLength: 80, Blades: 4,
	}))
	s.AddWindmill(NewWindmill(Vec2{100, -220}, s.NextIdentity(), WindmillConfig{
		TowerWidth: 35, TowerHeight: 130, BladeLength: 90, Blades: 4,
	}))
	s.AddWindmill(NewWindmill(Vec2{350, -210}, s.NextIdentity(), WindmillConfig{
		TowerWidth: 28, TowerHeight: 110, BladeLength: 75, Blades: 4,
	}))

	s.AddCloud(NewCloud(Vec2{-300, 220}, 0.3, 25))
	s.AddCloud(NewCloud(Vec2{0, 250}, 0.25, 30))
	s.AddCloud(NewCloud(Vec2{250, 200}, 0.35, 28))

	s.SetCelestialBody(NewCelestialBody(Vec2{350, 250}, 30, Color{1, 0.95, 0}))
}

// Reset is Clear followed by Populate followed by selecting windmill 1,
// in one synchronous call: the scene is never observably empty between a
// reset key press and the next redraw.
func (s *Scene) Reset(env *Env) {
	s.Clear(env)
	s.Populate()
	env.SelectedWindmill = 1
}

// Windmill spawn bands for the 'w' key: anywhere along the visible ground.
var (
	windmillSpawnX = Range{Min: -400, Max: 400}
	windmillSpawnY = Range{Min: -300, Max: -180}
)

// Cloud spawn speed band for the 'c' key.
var cloudSpawnSpeed = Range{Min: 0.2, Max: 0.5}

// SpawnWindmill adds a default-proportioned windmill at a random
// ground-level position and returns it.
func (s *Scene) SpawnWindmill(env *Env) *Windmill {
	w := NewWindmill(Vec2{
		X: randBetween(env.Rand, windmillSpawnX.Min, windmillSpawnX.Max),
		Y: randBetween(env.Rand, windmillSpawnY.Min, windmillSpawnY.Max),
	}, s.NextIdentity(), DefaultWindmillConfig())
	s.AddWindmill(w)
	return w
}

// SpawnCloud adds a cloud at a random on-screen position with a random
// drift speed and returns it.
func (s *Scene) SpawnCloud(env *Env) *Cloud {
	c := NewCloud(Vec2{
		X: randBetween(env.Rand, cloudWrapLeft, cloudWrapRight),
		Y: randBetween(env.Rand, CloudBand.Min, CloudBand.Max),
	}, randBetween(env.Rand, cloudSpawnSpeed.Min, cloudSpawnSpeed.Max), 25)
	s.AddCloud(c)
	return c
}
