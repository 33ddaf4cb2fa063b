package scheme

import (
	"fmt"
	"time"
)

// Renderer coalesces render requests and executes paint passes. It is a
// two-state machine: Idle (pending == 0) or Pending (exactly one scheduled
// frame, identified by pending). The token is cleared at the top of the
// frame callback, before the paint body runs, so a render requested from
// inside a paint pass schedules a fresh frame instead of being swallowed.
type Renderer struct {
	storage *Storage
	scroll  *ScrollManager
	zoom    *ZoomManager
	events  *Events
	canvas  *Canvas

	scheduler FrameScheduler
	pending   FrameToken

	debug bool
}

func newRenderer(storage *Storage, scroll *ScrollManager, zoom *ZoomManager,
	events *Events, canvas *Canvas, scheduler FrameScheduler, debug bool) *Renderer {
	return &Renderer{
		storage:   storage,
		scroll:    scroll,
		zoom:      zoom,
		events:    events,
		canvas:    canvas,
		scheduler: scheduler,
		debug:     debug,
	}
}

// RequestRenderAll schedules a paint pass for the next frame. Requests
// arriving while one is already pending coalesce into it, so any number of
// calls between two frames produce exactly one pass.
func (r *Renderer) RequestRenderAll() {
	if r.pending != 0 {
		return
	}
	r.pending = r.scheduler.Schedule(r.onFrame)
	if r.pending == 0 {
		panic("scheme: frame scheduler returned the zero token")
	}
}

// onFrame is the scheduled frame callback.
func (r *Renderer) onFrame() {
	// Back to Idle before painting; see the type comment.
	r.pending = 0
	r.paint()
}

// Render is the forced path: cancel any pending frame, rebuild the index,
// scale and scroll so all content fits the surface, and paint immediately.
// Used for initial display and "fit all" semantics; steady-state pan/zoom
// redraws go through RequestRenderAll.
func (r *Renderer) Render() {
	if r.pending != 0 {
		r.scheduler.Cancel(r.pending)
		r.pending = 0
	}
	r.storage.GetTree()

	content := r.storage.BoundingRect()
	w, h := r.canvas.Size()
	r.zoom.zoomToFit(content, w, h)
	r.scroll.ToCenter(content, w, h, r.zoom.Scale())
	// ToCenter requested a frame; the synchronous paint below covers it.
	if r.pending != 0 {
		r.scheduler.Cancel(r.pending)
		r.pending = 0
	}
	r.paint()
}

// paint executes one pass: clear the visible world rect at the current
// scale, publish beforeRenderAll, query the index with the viewport rect,
// draw every object of every returned node, publish afterRenderAll.
//
// Node object slices belong to the immutable tree, so render callbacks may
// mutate the storage freely; the changes only mark the index dirty and
// take effect on the next pass.
func (r *Renderer) paint() {
	w, h := r.canvas.Size()
	scale := r.zoom.Scale()
	r.canvas.setView(r.scroll.Left(), r.scroll.Top(), scale)
	r.canvas.ClearRegion(visibleRect(r.scroll.Left(), r.scroll.Top(), w, h, scale))

	r.events.send(EventBeforeRenderAll, nil)

	view := visibleRect(r.scroll.Left(), r.scroll.Top(), w, h, r.zoom.Scale())

	var stats paintStats
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	var nodes []*TreeNode
	if !view.Empty() {
		nodes = r.storage.FindNodesByBoundingRect(nil, view)
	}

	if r.debug {
		stats.queryTime = time.Since(t0)
		stats.nodeCount = len(nodes)
		t0 = time.Now()
	}

	for _, n := range nodes {
		for _, o := range n.Objects() {
			if err := r.renderObject(o); err != nil {
				stats.errorCount++
				r.events.send(EventObjectRenderError, ObjectRenderError{Object: o, Err: err})
			}
			stats.objectCount++
		}
	}

	if r.debug {
		stats.drawTime = time.Since(t0)
		r.debugLog(stats)
	}

	r.events.send(EventAfterRenderAll, nil)
}

// renderObject invokes one object's render capability, converting a panic
// into an error so a single malformed object cannot blank the frame.
func (r *Renderer) renderObject(o SchemeObject) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("render panicked: %v", p)
		}
	}()
	return o.Render(r.canvas)
}
