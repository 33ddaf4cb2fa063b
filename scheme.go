package scheme

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default tree build parameters and zoom limits.
const (
	defaultMaxObjectsPerNode = 8
	defaultMaxTreeDepth      = 6
	defaultMinScale          = 0.1
	defaultMaxScale          = 10.0
	defaultFitPadding        = 0.05
)

// defaultBackground is a near-white paper tone.
var defaultBackground = Color{R: 0.96, G: 0.96, B: 0.96, A: 1}

// Config configures a Scheme at construction time. Zero values select the
// documented defaults.
type Config struct {
	// Width and Height are the surface size in pixels. Required.
	Width, Height int

	// MaxObjectsPerNode is the leaf capacity before a tree node splits.
	// Default 8.
	MaxObjectsPerNode int
	// MaxTreeDepth bounds tree subdivision. Default 6.
	MaxTreeDepth int

	// MinScale and MaxScale limit zooming. Defaults 0.1 and 10.
	MinScale, MaxScale float64
	// FitPadding is the fraction of the surface kept empty around content
	// on each side when fitting. Default 0.05.
	FitPadding float64

	// Background is the clear color. Default near-white.
	Background Color

	// Scheduler overrides the frame scheduler. By default frames run on
	// the next Update tick; tests inject a hand-ticked fake here.
	Scheduler FrameScheduler

	// Debug prints per-pass query/draw stats to stderr.
	Debug bool
}

// Scheme is the diagram surface: it composes the object storage, the
// scroll/zoom state, the event hub, the render scheduler, and the backing
// canvas. All methods must be called from the single cooperative thread
// (the ebiten game loop or whatever drives Update).
type Scheme struct {
	width, height int

	storage  *Storage
	scroll   *ScrollManager
	zoom     *ZoomManager
	events   *Events
	canvas   *Canvas
	renderer *Renderer

	// frames is the default loop scheduler, nil when Config.Scheduler was
	// injected (the owner ticks it instead).
	frames *loopScheduler
}

// NewScheme creates a scheme with an empty object set and a cleared
// canvas. Returns an error for non-positive dimensions or inconsistent
// zoom limits.
func NewScheme(cfg Config) (*Scheme, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scheme: invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxObjectsPerNode == 0 {
		cfg.MaxObjectsPerNode = defaultMaxObjectsPerNode
	}
	if cfg.MaxTreeDepth == 0 {
		cfg.MaxTreeDepth = defaultMaxTreeDepth
	}
	if cfg.MinScale == 0 {
		cfg.MinScale = defaultMinScale
	}
	if cfg.MaxScale == 0 {
		cfg.MaxScale = defaultMaxScale
	}
	if cfg.FitPadding == 0 {
		cfg.FitPadding = defaultFitPadding
	}
	if cfg.Background == (Color{}) {
		cfg.Background = defaultBackground
	}
	if cfg.MinScale <= 0 || !finite(cfg.MinScale) || cfg.MaxScale < cfg.MinScale {
		return nil, fmt.Errorf("scheme: invalid zoom limits [%v, %v]", cfg.MinScale, cfg.MaxScale)
	}

	s := &Scheme{
		width:   cfg.Width,
		height:  cfg.Height,
		storage: newStorage(cfg.MaxObjectsPerNode, cfg.MaxTreeDepth),
		events:  newEvents(),
		canvas:  newCanvas(cfg.Width, cfg.Height, cfg.Background),
	}

	scheduler := cfg.Scheduler
	if scheduler == nil {
		s.frames = &loopScheduler{}
		scheduler = s.frames
	}

	requestRender := func() { s.renderer.RequestRenderAll() }
	s.scroll = newScrollManager(requestRender)
	s.zoom = newZoomManager(cfg.MinScale, cfg.MaxScale, cfg.FitPadding, requestRender)
	s.renderer = newRenderer(s.storage, s.scroll, s.zoom, s.events, s.canvas, scheduler, cfg.Debug)
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Scheme) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Scheme) Height() int { return s.height }

// Storage returns the object storage.
func (s *Scheme) Storage() *Storage { return s.storage }

// Scroll returns the scroll collaborator.
func (s *Scheme) Scroll() *ScrollManager { return s.scroll }

// Zoom returns the zoom collaborator.
func (s *Scheme) Zoom() *ZoomManager { return s.zoom }

// Events returns the event hub.
func (s *Scheme) Events() *Events { return s.events }

// Canvas returns the drawing surface.
func (s *Scheme) Canvas() *Canvas { return s.canvas }

// AddObject adds an object to the scheme. Adding a present object is a
// no-op. The index is rebuilt lazily on the next paint pass; request one
// when you are done mutating.
func (s *Scheme) AddObject(o SchemeObject) { s.storage.AddObject(o) }

// RemoveObject removes an object if present.
func (s *Scheme) RemoveObject(o SchemeObject) { s.storage.RemoveObject(o) }

// RemoveObjects clears the object set.
func (s *Scheme) RemoveObjects() { s.storage.RemoveObjects() }

// Objects returns a snapshot of the object set in insertion order.
func (s *Scheme) Objects() []SchemeObject { return s.storage.Objects() }

// VisibleRect returns the world rect currently visible on the surface.
func (s *Scheme) VisibleRect() Rect {
	return visibleRect(s.scroll.Left(), s.scroll.Top(),
		float64(s.width), float64(s.height), s.zoom.Scale())
}

// RequestRenderAll schedules a coalesced paint pass for the next frame.
func (s *Scheme) RequestRenderAll() { s.renderer.RequestRenderAll() }

// Render rebuilds the index, fits and centers all content, and paints
// synchronously. Any already scheduled frame is cancelled first.
func (s *Scheme) Render() { s.renderer.Render() }

// Resize replaces the backing surface. Fails fast on non-positive
// dimensions; on success the previous content is discarded and a repaint
// is scheduled.
func (s *Scheme) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("scheme: invalid surface size %dx%d", width, height)
	}
	s.width = width
	s.height = height
	s.canvas.resize(width, height)
	s.RequestRenderAll()
	return nil
}

// ZoomAt zooms by factor keeping the world point under the given surface
// pixel stationary, the way wheel zoom is expected to behave.
func (s *Scheme) ZoomAt(sx, sy, factor float64) error {
	old := s.zoom.Scale()
	wx := sx/old - s.scroll.Left()
	wy := sy/old - s.scroll.Top()
	if err := s.zoom.ZoomBy(factor); err != nil {
		return err
	}
	scale := s.zoom.Scale()
	s.scroll.SetScroll(sx/scale-wx, sy/scale-wy)
	return nil
}

// Update advances scroll animations and runs the frame callbacks scheduled
// since the previous tick. Call once per ebiten Update.
func (s *Scheme) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.step(dt)
}

// step is Update with an explicit time delta.
func (s *Scheme) step(dt float32) {
	s.scroll.update(dt)
	if s.frames != nil {
		s.frames.runPending()
	}
}

// Draw blits the backing canvas onto the given screen image. Call from
// your ebiten Draw method.
func (s *Scheme) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	screen.DrawImage(s.canvas.Image(), &op)
}
