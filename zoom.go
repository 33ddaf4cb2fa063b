package scheme

import "fmt"

// ZoomManager owns the view scale. The scale is always positive and
// finite: SetScale rejects anything else instead of clamping, so an
// invalid viewport can never be derived downstream. MinScale/MaxScale are
// presentation limits applied to user zooming and fit computations.
type ZoomManager struct {
	scale    float64
	minScale float64
	maxScale float64
	// fitPadding is the fraction of the surface kept empty around fitted
	// content on each side.
	fitPadding float64

	requestRender func()
}

func newZoomManager(minScale, maxScale, fitPadding float64, requestRender func()) *ZoomManager {
	return &ZoomManager{
		scale:         1,
		minScale:      minScale,
		maxScale:      maxScale,
		fitPadding:    fitPadding,
		requestRender: requestRender,
	}
}

// Scale returns the current scale (1 = one world unit per pixel).
func (m *ZoomManager) Scale() float64 { return m.scale }

// SetScale sets the scale directly. A non-positive or non-finite value is
// a contract violation and returns an error; values outside the
// Min/MaxScale limits are brought into range.
func (m *ZoomManager) SetScale(scale float64) error {
	if scale <= 0 || !finite(scale) {
		return fmt.Errorf("scheme: invalid scale %v", scale)
	}
	m.scale = m.limit(scale)
	m.requestRender()
	return nil
}

// ZoomBy multiplies the scale by factor, subject to the same validation
// and limits as SetScale.
func (m *ZoomManager) ZoomBy(factor float64) error {
	if factor <= 0 || !finite(factor) {
		return fmt.Errorf("scheme: invalid zoom factor %v", factor)
	}
	return m.SetScale(m.scale * factor)
}

// FitScale returns the limited scale at which the content rect fits a
// surface of the given pixel size, with the configured padding. Empty
// content fits at scale 1.
func (m *ZoomManager) FitScale(content Rect, surfaceW, surfaceH float64) float64 {
	if content.Empty() || surfaceW <= 0 || surfaceH <= 0 {
		return m.limit(1)
	}
	usable := 1 - 2*m.fitPadding
	sx := surfaceW * usable / content.Width()
	sy := surfaceH * usable / content.Height()
	if sy < sx {
		sx = sy
	}
	return m.limit(sx)
}

// zoomToFit applies FitScale for the given content without going through
// SetScale validation (the fit result is always valid).
func (m *ZoomManager) zoomToFit(content Rect, surfaceW, surfaceH float64) {
	m.scale = m.FitScale(content, surfaceW, surfaceH)
}

// limit brings a scale into the configured Min/MaxScale range.
func (m *ZoomManager) limit(scale float64) float64 {
	if scale < m.minScale {
		return m.minScale
	}
	if scale > m.maxScale {
		return m.maxScale
	}
	return scale
}
