package gale

// Color represents an RGB color with components in [0, 1].
// The draw surface is opaque; there is no alpha channel.
type Color struct {
	R, G, B float64
}

// Common fixed colors used by the built-in entities.
var (
	ColorWhite = Color{1, 1, 1}
)

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API. Coordinates are in world space: x grows rightward, y grows
// upward (see the World* constants for the logical extent).
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// World extent. All entity coordinates live in this fixed logical space;
// the Canvas maps it onto the window, whatever its pixel size.
const (
	WorldLeft   = -500.0
	WorldRight  = 500.0
	WorldBottom = -350.0
	WorldTop    = 350.0
)

// Range is a general-purpose min/max range. Used for the randomized spawn
// bands (cloud altitude, windmill ground line).
type Range struct {
	Min, Max float64
}
