package gale

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// colorToRGBA converts a [0,1] float color to 8-bit RGBA, clamping.
func colorToRGBA(c Color) color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: 255}
}

// whitePixel is a shared 1x1 white image; all solid shapes are triangles
// sampling it, tinted by vertex color.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(colorToRGBA(ColorWhite))
	}
	return whitePixel
}

// Canvas is the ebitengine-backed Surface. It maps the fixed logical world
// extent (y-up) onto the target image (y-down) and renders every shape as
// tinted triangles over a shared white pixel, so an entire frame batches
// into uniform DrawTriangles calls.
//
// Call Begin with the frame's target image before handing the canvas to
// DrawAll; the canvas holds no state worth keeping between frames.
type Canvas struct {
	screen *ebiten.Image
	scaleX float64
	scaleY float64

	fill        Color
	stroke      Color
	strokeWidth float64

	// Scratch buffers reused across shapes (grown to high-water mark).
	verts []ebiten.Vertex
	inds  []uint16
	pts   []Vec2
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates an empty canvas. Begin must be called before drawing.
func NewCanvas() *Canvas {
	return &Canvas{strokeWidth: 1}
}

// Begin targets the canvas at the frame's screen image and derives the
// world-to-screen scale from its bounds.
func (c *Canvas) Begin(screen *ebiten.Image) {
	c.screen = screen
	b := screen.Bounds()
	c.scaleX = float64(b.Dx()) / (WorldRight - WorldLeft)
	c.scaleY = float64(b.Dy()) / (WorldTop - WorldBottom)
}

// toScreen maps a world point to screen pixels, flipping y.
func (c *Canvas) toScreen(p Vec2) Vec2 {
	return Vec2{
		X: (p.X - WorldLeft) * c.scaleX,
		Y: (WorldTop - p.Y) * c.scaleY,
	}
}

// SetFill implements Surface.
func (c *Canvas) SetFill(col Color) {
	c.fill = col
}

// SetStroke implements Surface. Width is in screen pixels.
func (c *Canvas) SetStroke(col Color, width float64) {
	c.stroke = col
	c.strokeWidth = width
}

// FillPolygon implements Surface with fan triangulation: N vertices,
// 3*(N-2) indices. Convex input assumed, matching the entity shapes.
func (c *Canvas) FillPolygon(pts []Vec2) {
	n := len(pts)
	if n < 3 || c.screen == nil {
		return
	}

	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	for _, p := range pts {
		c.verts = append(c.verts, c.vertex(c.toScreen(p), c.fill))
	}
	for i := 0; i < n-2; i++ {
		c.inds = append(c.inds, 0, uint16(i+1), uint16(i+2))
	}
	c.flush()
}

// StrokePolyline implements Surface: each segment becomes a ribbon quad of
// the current stroke width, centered on the segment.
func (c *Canvas) StrokePolyline(pts []Vec2, closed bool) {
	n := len(pts)
	if n < 2 || c.screen == nil {
		return
	}

	c.pts = c.pts[:0]
	for _, p := range pts {
		c.pts = append(c.pts, c.toScreen(p))
	}
	if closed {
		c.pts = append(c.pts, c.pts[0])
	}

	half := c.strokeWidth / 2
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	for i := 0; i+1 < len(c.pts); i++ {
		a, b := c.pts[i], c.pts[i+1]
		nx, ny := segmentNormal(a, b)
		base := uint16(len(c.verts))
		c.verts = append(c.verts,
			c.vertex(Vec2{a.X + nx*half, a.Y + ny*half}, c.stroke),
			c.vertex(Vec2{a.X - nx*half, a.Y - ny*half}, c.stroke),
			c.vertex(Vec2{b.X + nx*half, b.Y + ny*half}, c.stroke),
			c.vertex(Vec2{b.X - nx*half, b.Y - ny*half}, c.stroke),
		)
		c.inds = append(c.inds, base, base+1, base+2, base+1, base+3, base+2)
	}
	c.flush()
}

// FillDisc implements Surface as a filled regular polygon.
func (c *Canvas) FillDisc(center Vec2, radius float64) {
	c.FillPolygon(DiscPoints(center, radius, discSegments))
}

// vertex builds a tinted vertex sampling the center of the white pixel.
func (c *Canvas) vertex(p Vec2, col Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(col.R),
		ColorG: float32(col.G),
		ColorB: float32(col.B),
		ColorA: 1,
	}
}

func (c *Canvas) flush() {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.screen.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), op)
}

// segmentNormal returns the unit left-perpendicular of the segment from a
// to b, or a vertical normal for degenerate segments.
func segmentNormal(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
