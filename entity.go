package gale

// Entity is the capability set shared by every scene member: a position,
// a visibility flag, a fixed-rate simulation step, and a self-draw.
//
// Contract: Update advances exactly one tick of internal state and must be
// a no-op while env.Paused is set. Draw emits shape commands reflecting
// current state and never mutates it. Within a frame the scene always runs
// all updates, then all draws; entities must not assume any ordering
// beyond that.
type Entity interface {
	Position() Vec2
	SetPosition(p Vec2)
	Visible() bool
	SetVisible(v bool)
	Update(env *Env)
	Draw(dst Surface, env *Env)
}

// object carries the position and visibility every entity shares.
// The zero value is visible at the origin.
type object struct {
	pos    Vec2
	hidden bool
}

// Position returns the entity's anchor point. Its meaning is
// variant-local: cloud center, celestial center, windmill tower base.
func (o *object) Position() Vec2 {
	return o.pos
}

// SetPosition moves the entity's anchor point.
func (o *object) SetPosition(p Vec2) {
	o.pos = p
}

// Visible reports whether Draw emits anything. Update runs regardless.
func (o *object) Visible() bool {
	return !o.hidden
}

// SetVisible shows or hides the entity.
func (o *object) SetVisible(v bool) {
	o.hidden = !v
}
