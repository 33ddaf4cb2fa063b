package scheme

// visibleRect derives the world rect currently visible on a surface of the
// given pixel size from the scroll offset and scale. Scroll offsets are the
// world-space translation applied before scaling, so a positive scrollLeft
// shifts the content right and exposes negative world space.
//
// Scale must be positive and all inputs finite; the zoom and resize
// boundaries reject anything else before it can reach here.
func visibleRect(scrollLeft, scrollTop, surfaceW, surfaceH, scale float64) Rect {
	left := -scrollLeft
	top := -scrollTop
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + surfaceW/scale,
		Bottom: top + surfaceH/scale,
	}
}
