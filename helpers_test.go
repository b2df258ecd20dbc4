package replex

import (
	"fmt"
	"testing"
)

// useRecordingCanvases makes every surface created during the test record
// its draws instead of allocating ebiten images.
func useRecordingCanvases(t *testing.T) {
	t.Helper()
	prev := newCanvas
	newCanvas = func(size Size) Canvas { return NewRecordingCanvas(size) }
	t.Cleanup(func() { newCanvas = prev })
}

// recorded returns the surface's recording canvas.
func recorded(t *testing.T, s *Surface) *RecordingCanvas {
	t.Helper()
	rc, ok := s.Canvas().(*RecordingCanvas)
	if !ok {
		t.Fatalf("surface canvas is %T, want *RecordingCanvas", s.Canvas())
	}
	return rc
}

func newTestSurface(size Size) *Surface {
	return NewSurfaceWithCanvas(Vec2{}, NewRecordingCanvas(size))
}

// eventLogger is an interactive component that logs every event it receives as
// "name:Kind".
type eventLogger struct {
	InteractiveComponent
	name string
}

func newLogger(name string, r Rect, log *[]string) *eventLogger {
	p := &eventLogger{
		InteractiveComponent: NewInteractiveComponent(Vec2{r.X, r.Y}, Size{int(r.Width), int(r.Height)}),
		name:                 name,
	}
	for k := EventKind(0); k < eventKindCount; k++ {
		p.AddEventListener(k, func(e Event) {
			*log = append(*log, fmt.Sprintf("%s:%s", name, e.Kind))
		})
	}
	return p
}

func newLoggerZ(name string, r Rect, z int, log *[]string) *eventLogger {
	p := newLogger(name, r, log)
	if err := p.SetZIndex(z); err != nil {
		panic(err)
	}
	return p
}

func leftDown(x, y float64) Event {
	return Event{Kind: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft}
}

func leftUp(x, y float64) Event {
	return Event{Kind: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft}
}

func move(x, y float64) Event {
	return Event{Kind: EventMouseMove, X: x, Y: y}
}

func wheel(x, y, dy float64) Event {
	return Event{Kind: EventMouseWheel, X: x, Y: y, WheelY: dy}
}
