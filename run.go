package scheme

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
}

// wheelZoomStep is the zoom factor applied per wheel notch.
const wheelZoomStep = 1.1

// Run opens a window sized to the scheme's surface, binds drag-to-pan and
// wheel-zoom, and drives the render loop until the window closes. For full
// control implement ebiten.Game yourself and call Scheme.Update and
// Scheme.Draw directly.
func Run(s *Scheme, cfg RunConfig) error {
	title := cfg.Title
	if title == "" {
		title = "scheme-designer"
	}
	ebiten.SetWindowSize(s.Width(), s.Height())
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(&game{scheme: s, showFPS: cfg.ShowFPS})
}

// game adapts a Scheme to ebiten.Game with default pan/zoom input.
type game struct {
	scheme  *Scheme
	showFPS bool

	dragging     bool
	lastX, lastY int
}

func (g *game) Update() error {
	s := g.scheme

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		cx, cy := ebiten.CursorPosition()
		_ = s.ZoomAt(float64(cx), float64(cy), math.Pow(wheelZoomStep, wheelY))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging {
			scale := s.Zoom().Scale()
			s.Scroll().ScrollBy(float64(x-g.lastX)/scale, float64(y-g.lastY)/scale)
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	s.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scheme.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scheme.Width(), g.scheme.Height()
}
