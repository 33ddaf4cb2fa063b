package scheme

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestScroll() (*ScrollManager, *int) {
	requests := 0
	m := newScrollManager(func() { requests++ })
	return m, &requests
}

func TestSetScroll(t *testing.T) {
	m, requests := newTestScroll()
	m.SetScroll(30, -20)
	if m.Left() != 30 || m.Top() != -20 {
		t.Errorf("scroll = (%v, %v), want (30, -20)", m.Left(), m.Top())
	}
	if *requests != 1 {
		t.Errorf("render requests = %d, want 1", *requests)
	}
}

func TestScrollBy(t *testing.T) {
	m, _ := newTestScroll()
	m.SetScroll(10, 10)
	m.ScrollBy(-5, 15)
	if m.Left() != 5 || m.Top() != 25 {
		t.Errorf("scroll = (%v, %v), want (5, 25)", m.Left(), m.Top())
	}
}

func TestToCenter(t *testing.T) {
	m, _ := newTestScroll()
	m.ToCenter(Rect{0, 0, 100, 100}, 200, 200, 1)
	// Visible area is 200x200 world units; content center (50,50) should
	// land at visible center (100,100).
	if !approxEqual(m.Left(), 50, epsilon) || !approxEqual(m.Top(), 50, epsilon) {
		t.Errorf("scroll = (%v, %v), want (50, 50)", m.Left(), m.Top())
	}

	m.ToCenter(Rect{0, 0, 100, 100}, 200, 200, 2)
	// At scale 2 the visible area is 100x100 world units; centered content
	// starts exactly at the origin.
	if !approxEqual(m.Left(), 0, epsilon) || !approxEqual(m.Top(), 0, epsilon) {
		t.Errorf("scroll at scale 2 = (%v, %v), want (0, 0)", m.Left(), m.Top())
	}
}

func TestScrollTo(t *testing.T) {
	m, requests := newTestScroll()
	m.ScrollTo(100, 200, 1.0, ease.Linear)

	m.update(0.5)
	if !approxEqual(m.Left(), 50, 1.0) || !approxEqual(m.Top(), 100, 1.0) {
		t.Errorf("scroll halfway = (%v, %v), want ~(50, 100)", m.Left(), m.Top())
	}
	if *requests == 0 {
		t.Error("animated scroll did not request a render")
	}

	m.update(0.5)
	if !approxEqual(m.Left(), 100, 1.0) || !approxEqual(m.Top(), 200, 1.0) {
		t.Errorf("scroll end = (%v, %v), want ~(100, 200)", m.Left(), m.Top())
	}
	if m.anim != nil {
		t.Error("animation not cleared after completion")
	}
}

func TestSetScrollCancelsAnimation(t *testing.T) {
	m, _ := newTestScroll()
	m.ScrollTo(100, 100, 1.0, ease.Linear)
	m.SetScroll(5, 5)
	m.update(0.5)
	if m.Left() != 5 || m.Top() != 5 {
		t.Errorf("scroll = (%v, %v) after cancel, want (5, 5)", m.Left(), m.Top())
	}
}

func TestUpdateWithoutAnimationIsQuiet(t *testing.T) {
	m, requests := newTestScroll()
	m.update(1.0)
	if *requests != 0 {
		t.Error("idle update requested a render")
	}
}
