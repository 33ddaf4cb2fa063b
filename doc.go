// Package scheme is an interactive 2D diagram surface for [Ebitengine].
//
// A [Scheme] renders a collection of positioned, boxed objects onto a
// backing canvas and lets the user pan and zoom over them. Only the objects
// whose bounding rects intersect the current viewport are drawn each frame;
// a lazily rebuilt quad tree answers the "what overlaps this rectangle"
// query fast enough to run every frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, binds
// drag-to-pan and wheel-zoom, and drives the render loop for you:
//
//	s, _ := scheme.NewScheme(scheme.Config{Width: 800, Height: 600})
//	s.AddObject(&scheme.RectObject{
//		Rect: scheme.Rect{Left: 10, Top: 10, Right: 120, Bottom: 60},
//		Fill: scheme.Color{R: 0.3, G: 0.7, B: 1, A: 1},
//	})
//	s.Render() // fit all objects and draw
//	scheme.Run(s, scheme.RunConfig{Title: "My Diagram"})
//
// For full control, implement [ebiten.Game] yourself: call [Scheme.Update]
// from Update and blit [Canvas.Image] from Draw.
//
// # Objects
//
// Every visual element implements [SchemeObject]: a world-space bounding
// rect plus a render capability. The package ships [RectObject],
// [CircleObject], [LineObject], and [ImageObject]; define your own kinds by
// implementing the interface.
//
// # Rendering model
//
// Mutating the object set marks the spatial index dirty; the next paint
// pass rebuilds it, queries it with the visible world rect, and draws the
// returned objects. Render requests are coalesced: any number of
// [Scheme.RequestRenderAll] calls between two frames produce exactly one
// paint pass. [Scheme.Render] is the forced path: it rebuilds immediately,
// scales and scrolls so all objects fit the surface, and paints
// synchronously.
//
// Around every paint pass the scheme publishes beforeRenderAll and
// afterRenderAll events; a failing object render is reported through an
// objectRenderError event instead of aborting the pass. Subscribe with
// [Scheme.Events].
//
// [Ebitengine]: https://ebitengine.org
package scheme
