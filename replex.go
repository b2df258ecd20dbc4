package replex

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color, premultiplying at conversion time, so it can
// be handed straight to ebiten and vector calls.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
	ColorLightGray   = Color{0.85, 0.85, 0.85, 1}
	ColorGray        = Color{0.5, 0.5, 0.5, 1}
	ColorDarkGray    = Color{0.25, 0.25, 0.25, 1}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	return uint32(clamp01(c.R)*ca*0xffff + 0.5),
		uint32(clamp01(c.G)*ca*0xffff + 0.5),
		uint32(clamp01(c.B)*ca*0xffff + 0.5),
		uint32(ca*0xffff + 0.5)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is an integer width/height pair. Both dimensions are non-negative.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies strictly inside the
// rectangle. Points on any edge are outside.
func (r Rect) Contains(x, y float64) bool {
	return r.X < x && x < r.X+r.Width &&
		r.Y < y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// EventKind identifies a kind of interaction event.
type EventKind uint8

const (
	EventMouseDown  EventKind = iota // a pointer button was pressed
	EventMouseUp                     // a pointer button was released
	EventMouseWheel                  // the wheel moved
	EventMouseMove                   // the pointer moved
	EventMouseEnter                  // the pointer entered a component's bounds
	EventMouseLeave                  // the pointer left a component's bounds
	EventKeyDown                     // a key was pressed
	EventKeyUp                       // a key was released
	EventClick                       // press then release on the same button

	eventKindCount
)

// EventKindCount is the number of defined event kinds.
const EventKindCount = int(eventKindCount)

var eventKindNames = [eventKindCount]string{
	"MouseDown", "MouseUp", "MouseWheel", "MouseMove",
	"MouseEnter", "MouseLeave", "KeyDown", "KeyUp", "Click",
}

func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return "Unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift    KeyModifiers = 1 << iota // Shift key
	ModCtrl                              // Control key
	ModAlt                               // Alt / Option key
	ModMeta                              // Meta / Command / Windows key
	ModCapsLock                          // Caps Lock toggled on
)

// Anchor selects which point of a drawn text block is placed at the given
// position.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorMidLeft
)

// NoIndex is reported by index callbacks when no element is addressed.
const NoIndex = -1
