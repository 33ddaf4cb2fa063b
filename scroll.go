package scheme

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the X and Y offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// ScrollManager owns the scroll offset: the world-space translation applied
// before scaling. A positive offset shifts content right/down on the
// surface. Every change requests a coalesced redraw.
type ScrollManager struct {
	left, top float64
	anim      *scrollAnim

	requestRender func()
}

func newScrollManager(requestRender func()) *ScrollManager {
	return &ScrollManager{requestRender: requestRender}
}

// Left returns the horizontal scroll offset in world units.
func (m *ScrollManager) Left() float64 { return m.left }

// Top returns the vertical scroll offset in world units.
func (m *ScrollManager) Top() float64 { return m.top }

// SetScroll jumps to the given offset and cancels any running scroll
// animation.
func (m *ScrollManager) SetScroll(left, top float64) {
	m.anim = nil
	m.left = left
	m.top = top
	m.requestRender()
}

// ScrollBy shifts the offset by a world-space delta.
func (m *ScrollManager) ScrollBy(dx, dy float64) {
	m.SetScroll(m.left+dx, m.top+dy)
}

// ToCenter sets the offset so the given content rect is centered on a
// surface of the given pixel size at the given scale.
func (m *ScrollManager) ToCenter(content Rect, surfaceW, surfaceH, scale float64) {
	viewW := surfaceW / scale
	viewH := surfaceH / scale
	centerX := (content.Left + content.Right) / 2
	centerY := (content.Top + content.Bottom) / 2
	m.SetScroll(viewW/2-centerX, viewH/2-centerY)
}

// ScrollTo animates the offset to the given value over duration seconds.
// The animation advances on each Scheme.Update tick.
func (m *ScrollManager) ScrollTo(left, top float64, duration float32, easeFn ease.TweenFunc) {
	m.anim = &scrollAnim{
		tweenX: gween.New(float32(m.left), float32(left), duration, easeFn),
		tweenY: gween.New(float32(m.top), float32(top), duration, easeFn),
	}
}

// update advances a running scroll animation. Called from Scheme.Update.
func (m *ScrollManager) update(dt float32) {
	if m.anim == nil {
		return
	}
	if !m.anim.doneX {
		val, done := m.anim.tweenX.Update(dt)
		m.left = float64(val)
		m.anim.doneX = done
	}
	if !m.anim.doneY {
		val, done := m.anim.tweenY.Update(dt)
		m.top = float64(val)
		m.anim.doneY = done
	}
	if m.anim.doneX && m.anim.doneY {
		m.anim = nil
	}
	m.requestRender()
}
