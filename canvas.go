package scheme

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// toNRGBA converts to the stdlib non-premultiplied 8-bit representation.
func (c Color) toNRGBA() color.NRGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// Canvas is the drawing surface a Scheme paints onto. It owns the backing
// ebiten image and the current world-to-screen view (scroll offset and
// scale), set by the renderer at the start of every paint pass. Object
// Render implementations draw through Canvas primitives using world
// coordinates and never deal with the view directly.
type Canvas struct {
	img        *ebiten.Image
	background Color

	// View state for the pass being painted.
	scrollLeft, scrollTop float64
	scale                 float64
}

// newCanvas creates a canvas with a fresh backing image.
// Dimensions are validated by the Scheme before it gets here.
func newCanvas(width, height int, background Color) *Canvas {
	return &Canvas{
		img:        ebiten.NewImage(width, height),
		background: background,
		scale:      1,
	}
}

// Image returns the backing image. Blit it to the screen from your
// ebiten.Game Draw method. The returned image MUST NOT be disposed.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Size returns the surface dimensions in pixels.
func (c *Canvas) Size() (w, h float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// resize replaces the backing image. The old content is discarded; the
// caller schedules a repaint.
func (c *Canvas) resize(width, height int) {
	c.img.Deallocate()
	c.img = ebiten.NewImage(width, height)
}

// setView installs the scroll offset and scale used to map world
// coordinates to screen pixels for the current paint pass.
func (c *Canvas) setView(scrollLeft, scrollTop, scale float64) {
	c.scrollLeft = scrollLeft
	c.scrollTop = scrollTop
	c.scale = scale
}

// Scale returns the scale of the pass being painted.
func (c *Canvas) Scale() float64 { return c.scale }

// WorldToScreen converts world coordinates to surface pixels under the
// current view.
func (c *Canvas) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return (wx + c.scrollLeft) * c.scale, (wy + c.scrollTop) * c.scale
}

// ScreenToWorld converts surface pixels to world coordinates under the
// current view.
func (c *Canvas) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx/c.scale - c.scrollLeft, sy/c.scale - c.scrollTop
}

// screenRect maps a world rect to an integer pixel rect, expanded outward
// so partial pixels are covered.
func (c *Canvas) screenRect(r Rect) image.Rectangle {
	x0, y0 := c.WorldToScreen(r.Left, r.Top)
	x1, y1 := c.WorldToScreen(r.Right, r.Bottom)
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
}

// ClearRegion fills the given world rect with the background color,
// clipped to the surface. Called by the renderer over the visible rect at
// the start of every paint pass.
func (c *Canvas) ClearRegion(r Rect) {
	sr := c.screenRect(r).Intersect(c.img.Bounds())
	if sr.Empty() {
		return
	}
	c.img.SubImage(sr).(*ebiten.Image).Fill(c.background.toNRGBA())
}

// FillRect fills a world rect with a solid color.
func (c *Canvas) FillRect(r Rect, col Color) {
	x, y := c.WorldToScreen(r.Left, r.Top)
	vector.DrawFilledRect(c.img,
		float32(x), float32(y),
		float32(r.Width()*c.scale), float32(r.Height()*c.scale),
		col.toNRGBA(), true)
}

// StrokeRect outlines a world rect. The stroke width is given in world
// units and scales with the view.
func (c *Canvas) StrokeRect(r Rect, col Color, width float64) {
	x, y := c.WorldToScreen(r.Left, r.Top)
	vector.StrokeRect(c.img,
		float32(x), float32(y),
		float32(r.Width()*c.scale), float32(r.Height()*c.scale),
		float32(width*c.scale), col.toNRGBA(), true)
}

// FillCircle fills a circle centered at a world point.
func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	x, y := c.WorldToScreen(cx, cy)
	vector.DrawFilledCircle(c.img,
		float32(x), float32(y), float32(radius*c.scale),
		col.toNRGBA(), true)
}

// StrokeLine draws a line segment between two world points. The stroke
// width is given in world units.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, col Color, width float64) {
	sx1, sy1 := c.WorldToScreen(x1, y1)
	sx2, sy2 := c.WorldToScreen(x2, y2)
	vector.StrokeLine(c.img,
		float32(sx1), float32(sy1), float32(sx2), float32(sy2),
		float32(width*c.scale), col.toNRGBA(), true)
}

// DrawImage draws img scaled into the given world rect.
func (c *Canvas) DrawImage(img *ebiten.Image, r Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || r.Empty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(
		r.Width()*c.scale/float64(b.Dx()),
		r.Height()*c.scale/float64(b.Dy()),
	)
	x, y := c.WorldToScreen(r.Left, r.Top)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	c.img.DrawImage(img, &op)
}
