package gale

import "math"

// DiscPoints returns the vertices of a regular polygon approximating a disc
// of the given radius centered at c. The polygon winds counter-clockwise
// starting at angle 0 (positive x axis).
func DiscPoints(c Vec2, radius float64, segments int) []Vec2 {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Vec2, segments)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vec2{
			X: c.X + radius*math.Cos(theta),
			Y: c.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

// Rotate returns p rotated counter-clockwise by the given angle (radians)
// about the origin.
func Rotate(p Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAbout returns p rotated counter-clockwise by the given angle
// (radians) about the pivot point.
func RotateAbout(p, pivot Vec2, angle float64) Vec2 {
	r := Rotate(Vec2{p.X - pivot.X, p.Y - pivot.Y}, angle)
	return Vec2{r.X + pivot.X, r.Y + pivot.Y}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// wrapDegrees normalizes an angle that has been advanced past 360 back into
// [0, 360), preserving the overshoot (359 + 2 wraps to 1, not 0).
func wrapDegrees(deg float64) float64 {
	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}
	return deg
}
