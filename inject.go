package replex

import "github.com/hajimehoshi/ebiten/v2"

// The inject queue feeds synthetic events through the same dispatch path
// as real input. Coordinates are screen coordinates. One event is consumed
// per frame and real input is skipped while the queue is non-empty.

func (a *App) inject(e Event) {
	a.injectQueue = append(a.injectQueue, e)
}

// InjectPress queues a left button press at (x, y).
func (a *App) InjectPress(x, y float64) {
	a.inject(Event{Kind: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move to (x, y).
func (a *App) InjectMove(x, y float64) {
	a.inject(Event{Kind: EventMouseMove, X: x, Y: y})
}

// InjectRelease queues a left button release at (x, y).
func (a *App) InjectRelease(x, y float64) {
	a.inject(Event{Kind: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick queues a move, press and release at (x, y). Consumes three
// frames.
func (a *App) InjectClick(x, y float64) {
	a.InjectMove(x, y)
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames
// is 2 (press + release).
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		a.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	a.InjectRelease(toX, toY)
}

// InjectWheel queues a vertical wheel event at (x, y).
func (a *App) InjectWheel(x, y, delta float64) {
	a.inject(Event{Kind: EventMouseWheel, X: x, Y: y, WheelY: delta})
}

// InjectKey queues a key press followed by its release.
func (a *App) InjectKey(k ebiten.Key, mods KeyModifiers) {
	a.inject(Event{Kind: EventKeyDown, Key: k, Modifiers: mods})
	a.inject(Event{Kind: EventKeyUp, Key: k, Modifiers: mods})
}

// PendingInjected returns the number of queued synthetic events.
func (a *App) PendingInjected() int { return len(a.injectQueue) }

// popInjected removes and returns the oldest queued event.
func (a *App) popInjected() (Event, bool) {
	if len(a.injectQueue) == 0 {
		return Event{}, false
	}
	e := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]
	return e, true
}
