package scheme

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SchemeObject is a single visual element on the scheme: a world-space
// bounding rect plus a render capability. Identity is interface identity —
// the same value added twice is the same object. Implementations are
// expected to paint idempotently: an object indexed in several tree nodes
// is rendered once per containing node.
type SchemeObject interface {
	// BoundingRect returns the object's axis-aligned bounds in world
	// coordinates. It must be stable while the object is stored; move an
	// object by removing and re-adding it.
	BoundingRect() Rect

	// Render draws the object onto the canvas using world coordinates.
	// A non-nil error is reported through the objectRenderError event;
	// the paint pass continues with the remaining objects.
	Render(c *Canvas) error
}

// RectObject is a solid rectangle with an optional stroke.
type RectObject struct {
	Rect   Rect
	Fill   Color
	Stroke Color
	// StrokeWidth is the outline width in world units. Zero disables the
	// outline.
	StrokeWidth float64
}

// BoundingRect returns the rectangle itself.
func (o *RectObject) BoundingRect() Rect { return o.Rect }

// Render fills the rectangle and strokes its outline when StrokeWidth > 0.
func (o *RectObject) Render(c *Canvas) error {
	c.FillRect(o.Rect, o.Fill)
	if o.StrokeWidth > 0 {
		c.StrokeRect(o.Rect, o.Stroke, o.StrokeWidth)
	}
	return nil
}

// CircleObject is a filled circle.
type CircleObject struct {
	CenterX, CenterY float64
	Radius           float64
	Fill             Color
}

// BoundingRect returns the square enclosing the circle.
func (o *CircleObject) BoundingRect() Rect {
	return Rect{
		Left:   o.CenterX - o.Radius,
		Top:    o.CenterY - o.Radius,
		Right:  o.CenterX + o.Radius,
		Bottom: o.CenterY + o.Radius,
	}
}

// Render fills the circle.
func (o *CircleObject) Render(c *Canvas) error {
	c.FillCircle(o.CenterX, o.CenterY, o.Radius, o.Fill)
	return nil
}

// LineObject is a straight line segment.
type LineObject struct {
	X1, Y1, X2, Y2 float64
	Stroke         Color
	// StrokeWidth is the line width in world units. Zero draws at one
	// world unit.
	StrokeWidth float64
}

// BoundingRect returns the rect spanned by the two endpoints.
func (o *LineObject) BoundingRect() Rect {
	r := Rect{Left: o.X1, Top: o.Y1, Right: o.X1, Bottom: o.Y1}
	return r.Union(Rect{Left: o.X2, Top: o.Y2, Right: o.X2, Bottom: o.Y2})
}

// Render strokes the segment.
func (o *LineObject) Render(c *Canvas) error {
	w := o.StrokeWidth
	if w <= 0 {
		w = 1
	}
	c.StrokeLine(o.X1, o.Y1, o.X2, o.Y2, o.Stroke, w)
	return nil
}

// ImageObject draws an ebiten image scaled into a world rect.
type ImageObject struct {
	Rect  Rect
	Image *ebiten.Image
}

// BoundingRect returns the destination rect.
func (o *ImageObject) BoundingRect() Rect { return o.Rect }

// Render draws the image scaled to fill the destination rect.
// A nil image renders nothing.
func (o *ImageObject) Render(c *Canvas) error {
	if o.Image == nil {
		return nil
	}
	c.DrawImage(o.Image, o.Rect)
	return nil
}
