// Package replex is a widget toolkit for [Ebitengine] built around surfaces
// that re-declare their interactive children every frame.
//
// replex provides surfaces, buttons, text boxes, text inputs, sliders,
// scroll boxes with drag inertia, and dropdowns, together with an event
// dispatcher that delivers every pointer event to exactly one component:
// the topmost hit by z-index.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you. The draw function is called every frame and declares what
// the root surface shows and which components receive events:
//
//	ok := replex.NewButton(replex.Vec2{X: 20, Y: 20}, replex.Size{W: 120, H: 32},
//		replex.DefaultButtonStyle(), "OK")
//	ok.OnClick(func(replex.Event) { fmt.Println("clicked") })
//
//	scene := replex.NewScene(replex.Size{W: 640, H: 480}, func(root *replex.Surface) {
//		root.Fill(replex.ColorWhite)
//		root.DrawButton(ok)
//	})
//	replex.Run(scene, replex.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Frames
//
// Each frame the [App] dispatches input to the scene's root surface, ticks
// it, calls [Scene.Draw], and renders deferred drawings. A surface forgets
// its children when ticked: a component that is not drawn in a frame
// receives no events in the next one.
//
// # Dispatch
//
// Pointer events go to a single target per surface. Targets are hit tested
// in registration order; a later hit wins over an earlier one without a
// z-index, or over one with a lower or equal z-index. Key events are
// broadcast to every target. Nested surfaces translate pointer coordinates
// into their own space before dispatching further.
//
// # Deferred drawing
//
// Components with a z-index draw into per-z slots of their surface's
// registry; [Surface.Render] executes them in ascending z order after the
// rest of the frame. This is how an open [Dropdown] list covers the widgets
// drawn after it.
//
// Tweens are provided by [gween] and ECS integration by the [Donburi]
// adapter in replex/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package replex
