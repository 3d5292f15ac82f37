package gale

// Surface is the draw-primitive sink that entities emit shapes to. The
// built-in implementation is Canvas (ebitengine); Recorder captures the
// command stream for headless tests.
//
// Fill and stroke state is sticky: SetFill/SetStroke apply to every
// subsequent shape until changed, matching the immediate-mode style the
// entities are written in (set color, emit shape).
type Surface interface {
	// SetFill sets the color used by FillPolygon and FillDisc.
	SetFill(c Color)
	// SetStroke sets the color and line width used by StrokePolyline.
	SetStroke(c Color, width float64)
	// FillPolygon fills a convex polygon given in world coordinates.
	FillPolygon(pts []Vec2)
	// StrokePolyline strokes an open or closed polyline in world coordinates.
	StrokePolyline(pts []Vec2, closed bool)
	// FillDisc fills a disc approximated by line segments.
	FillDisc(center Vec2, radius float64)
}

// CommandOp identifies the kind of a recorded draw command.
type CommandOp uint8

const (
	OpFillPolygon CommandOp = iota
	OpStrokePolyline
	OpFillDisc
)

// Command is one recorded Surface call with the fill/stroke state that was
// current when it was emitted.
type Command struct {
	Op     CommandOp
	Points []Vec2 // FillPolygon, StrokePolyline
	Closed bool   // StrokePolyline
	Center Vec2   // FillDisc
	Radius float64
	Color  Color   // fill color for fills, stroke color for strokes
	Width  float64 // stroke width
}

// Recorder is a Surface that records every command instead of rendering.
// Draw-path tests assert against the recorded stream without a display.
type Recorder struct {
	Commands []Command

	fill        Color
	stroke      Color
	strokeWidth float64
}

var _ Surface = (*Recorder)(nil)

// SetFill implements Surface.
func (r *Recorder) SetFill(c Color) {
	r.fill = c
}

// SetStroke implements Surface.
func (r *Recorder) SetStroke(c Color, width float64) {
	r.stroke = c
	r.strokeWidth = width
}

// FillPolygon implements Surface. The point slice is copied.
func (r *Recorder) FillPolygon(pts []Vec2) {
	r.Commands = append(r.Commands, Command{
		Op:     OpFillPolygon,
		Points: append([]Vec2(nil), pts...),
		Color:  r.fill,
	})
}

// StrokePolyline implements Surface. The point slice is copied.
func (r *Recorder) StrokePolyline(pts []Vec2, closed bool) {
	r.Commands = append(r.Commands, Command{
		Op:     OpStrokePolyline,
		Points: append([]Vec2(nil), pts...),
		Closed: closed,
		Color:  r.stroke,
		Width:  r.strokeWidth,
	})
}

// FillDisc implements Surface.
func (r *Recorder) FillDisc(center Vec2, radius float64) {
	r.Commands = append(r.Commands, Command{
		Op:     OpFillDisc,
		Center: center,
		Radius: radius,
		Color:  r.fill,
	})
}

// Reset discards all recorded commands, keeping the current fill and
// stroke state.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// CountOp returns how many recorded commands have the given op.
func (r *Recorder) CountOp(op CommandOp) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}
