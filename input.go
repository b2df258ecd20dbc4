package replex

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource produces this frame's input events in screen coordinates.
type InputSource interface {
	// Poll appends the events that happened since the last call to dst.
	Poll(dst []Event) []Event
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// EbitenInput polls ebiten's mouse and keyboard state. Caps lock is tracked
// as a toggle since ebiten only reports key presses.
type EbitenInput struct {
	lastX, lastY int
	seen         bool
	capsLock     bool
	keys         []ebiten.Key
}

// NewEbitenInput creates an input source reading from ebiten.
func NewEbitenInput() *EbitenInput { return &EbitenInput{} }

// Poll implements InputSource.
func (in *EbitenInput) Poll(dst []Event) []Event {
	mods := in.modifiers()

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !in.seen || mx != in.lastX || my != in.lastY {
		dst = append(dst, Event{Kind: EventMouseMove, X: x, Y: y, Modifiers: mods})
		in.lastX, in.lastY, in.seen = mx, my, true
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			dst = append(dst, Event{Kind: EventMouseDown, X: x, Y: y, Button: mb.btn, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			dst = append(dst, Event{Kind: EventMouseUp, X: x, Y: y, Button: mb.btn, Modifiers: mods})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		dst = append(dst, Event{Kind: EventMouseWheel, X: x, Y: y, WheelX: wx, WheelY: wy, Modifiers: mods})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if k == ebiten.KeyCapsLock {
			in.capsLock = !in.capsLock
			mods ^= ModCapsLock
		}
		dst = append(dst, Event{Kind: EventKeyDown, X: x, Y: y, Key: k, Modifiers: mods})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		dst = append(dst, Event{Kind: EventKeyUp, X: x, Y: y, Key: k, Modifiers: mods})
	}
	return dst
}

func (in *EbitenInput) modifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	if in.capsLock {
		mods |= ModCapsLock
	}
	return mods
}
