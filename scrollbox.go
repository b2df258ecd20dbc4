package replex

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// ScrollState is the interaction state of a ScrollBox.
type ScrollState uint8

const (
	ScrollIdle            ScrollState = iota // no pointer held, no motion
	ScrollContentDragging                    // left button held on the content column
	ScrollBarDragging                        // left button held on the scrollbar strip
	ScrollInertial                           // released with nonzero speed
)

var scrollStateNames = [...]string{"idle", "content-dragging", "bar-dragging", "inertial"}

func (s ScrollState) String() string {
	if int(s) < len(scrollStateNames) {
		return scrollStateNames[s]
	}
	return fmt.Sprintf("ScrollState(%d)", s)
}

const (
	defaultScrollBarWidth = 12
	defaultFriction       = 30
	defaultWheel          = 30
	defaultDragDeadZone   = 4.0 // pixels
)

// ScrollBoxConfig configures a ScrollBox. Zero values take the defaults
// noted on each field, except ElementHeight which must be positive.
type ScrollBoxConfig struct {
	// ElementHeight is the height of every content row.
	ElementHeight int
	// ScrollBarWidth is the width of the strip on the right. Default 12.
	ScrollBarWidth int
	// Friction is the inertial speed lost per second, in pixels per tick.
	// Default 30.
	Friction float64
	// Wheel is the offset change per wheel unit. Default 30.
	Wheel float64
	// DragDeadZone is the press-to-release travel above which a release
	// does not count as a click. Default 4.
	DragDeadZone float64

	BackgroundColor Color
	TrackColor      Color
	BarColor        Color

	// Clock scales friction and tweens. Nil uses TPSClock.
	Clock FrameClock
}

func (c ScrollBoxConfig) withDefaults() ScrollBoxConfig {
	if c.ScrollBarWidth <= 0 {
		c.ScrollBarWidth = defaultScrollBarWidth
	}
	if c.Friction <= 0 {
		c.Friction = defaultFriction
	}
	if c.Wheel == 0 {
		c.Wheel = defaultWheel
	}
	if c.DragDeadZone <= 0 {
		c.DragDeadZone = defaultDragDeadZone
	}
	if c.TrackColor == (Color{}) {
		c.TrackColor = ColorLightGray
	}
	if c.BarColor == (Color{}) {
		c.BarColor = ColorGray
	}
	return c
}

// ScrollBox is a vertically scrolling list of equally tall content surfaces
// with a scrollbar, drag scrolling with inertia, and wheel scrolling.
type ScrollBox struct {
	Surface

	cfg      ScrollBoxConfig
	contents []*Surface

	offset float64
	state  ScrollState

	// content drag
	dragStartY float64
	lastY      float64
	tickCount  int
	speed      float64

	// bar drag, in the parent's coordinate space
	barLastY float64

	// click tracking
	pressed    bool
	pressPoint Vec2
	hoverIndex int

	tween      *TweenGroup
	tweenValue float64

	onHover       []func(int)
	onClick       []func(int)
	onDrawContent func(int, *Surface)

	binding parentBinding
}

// NewScrollBox creates a scroll box at pos showing contents, one per
// ElementHeight row.
func NewScrollBox(pos Vec2, size Size, contents []*Surface, cfg ScrollBoxConfig) (*ScrollBox, error) {
	if len(contents) == 0 {
		return nil, ErrNoContents
	}
	if cfg.ElementHeight <= 0 {
		return nil, ErrInvalidElementHeight
	}
	sb := &ScrollBox{
		cfg:        cfg.withDefaults(),
		contents:   append([]*Surface(nil), contents...),
		hoverIndex: NoIndex,
	}
	sb.init(pos, newCanvas(size))
	return sb, nil
}

// Config returns the effective configuration.
func (sb *ScrollBox) Config() ScrollBoxConfig { return sb.cfg }

// State returns the current interaction state.
func (sb *ScrollBox) State() ScrollState { return sb.state }

// Speed returns the inertial speed in pixels per tick.
func (sb *ScrollBox) Speed() float64 { return sb.speed }

// Contents returns the content surfaces. The returned slice MUST NOT be
// mutated.
func (sb *ScrollBox) Contents() []*Surface { return sb.contents }

// AddContent appends a content row.
func (sb *ScrollBox) AddContent(c *Surface) {
	sb.contents = append(sb.contents, c)
}

// RemoveContent removes the content row at i.
func (sb *ScrollBox) RemoveContent(i int) error {
	if i < 0 || i >= len(sb.contents) {
		return fmt.Errorf("replex: remove content %d: %w", i, ErrIndexOutOfRange)
	}
	copy(sb.contents[i:], sb.contents[i+1:])
	sb.contents[len(sb.contents)-1] = nil
	sb.contents = sb.contents[:len(sb.contents)-1]
	sb.setOffset(sb.offset)
	return nil
}

// Resize replaces the backing canvas and re-clamps the offset to the new
// MaxOffset.
func (sb *ScrollBox) Resize(size Size) {
	sb.Surface.Resize(size)
	sb.setOffset(sb.offset)
}

// SetSize is Resize; a scroll box's canvas always matches its size.
func (sb *ScrollBox) SetSize(size Size) { sb.Resize(size) }

// OnHover registers fn to receive the hovered row index, or NoIndex when
// the pointer leaves the content column.
func (sb *ScrollBox) OnHover(fn func(int)) { sb.onHover = append(sb.onHover, fn) }

// OnClick registers fn to receive the clicked row index.
func (sb *ScrollBox) OnClick(fn func(int)) { sb.onClick = append(sb.onClick, fn) }

// OnDrawContent sets a hook called for every visible row before it is
// composited, so the owner can redraw it.
func (sb *ScrollBox) OnDrawContent(fn func(i int, content *Surface)) { sb.onDrawContent = fn }

// HoverIndex returns the hovered row index or NoIndex.
func (sb *ScrollBox) HoverIndex() int { return sb.hoverIndex }

// --- Geometry ---

func (sb *ScrollBox) trackLength() float64 { return float64(sb.Size().H) }

func (sb *ScrollBox) contentWidth() float64 {
	return float64(sb.Size().W - sb.cfg.ScrollBarWidth)
}

// MaxOffset returns the largest valid offset.
func (sb *ScrollBox) MaxOffset() float64 {
	total := float64(len(sb.contents) * sb.cfg.ElementHeight)
	return math.Max(total-sb.trackLength(), 0)
}

// Offset returns the scroll position.
func (sb *ScrollBox) Offset() float64 { return sb.offset }

// SetOffset jumps to offset, clamped to [0, MaxOffset], and stops motion.
func (sb *ScrollBox) SetOffset(offset float64) {
	sb.tween.Stop()
	sb.tween = nil
	sb.speed = 0
	if sb.state == ScrollInertial {
		sb.state = ScrollIdle
	}
	sb.setOffset(offset)
}

func (sb *ScrollBox) setOffset(offset float64) {
	sb.offset = math.Min(math.Max(offset, 0), sb.MaxOffset())
}

// ScrollBarLength returns the scrollbar thumb length.
func (sb *ScrollBox) ScrollBarLength() float64 {
	track, m := sb.trackLength(), sb.MaxOffset()
	if m <= 0 {
		return track
	}
	return math.Min(track/(m/track), track)
}

// ScrollBarOffset returns the thumb's distance from the top of the track.
func (sb *ScrollBox) ScrollBarOffset() float64 {
	m := sb.MaxOffset()
	if m <= 0 {
		return 0
	}
	return sb.offset / m * (sb.trackLength() - sb.ScrollBarLength())
}

// indexAt returns the row under local y, or NoIndex.
func (sb *ScrollBox) indexAt(y float64) int {
	i := int(math.Floor((sb.offset + y) / float64(sb.cfg.ElementHeight)))
	if i < 0 || i >= len(sb.contents) {
		return NoIndex
	}
	return i
}

func (sb *ScrollBox) inContentColumn(local Vec2) bool {
	return local.X < sb.contentWidth()
}

// ScrollTo animates the offset to target over seconds. A non-positive
// duration jumps immediately.
func (sb *ScrollBox) ScrollTo(target, seconds float64) {
	if seconds <= 0 {
		sb.SetOffset(target)
		return
	}
	sb.SetOffset(sb.offset)
	sb.tweenValue = sb.offset
	target = math.Min(math.Max(target, 0), sb.MaxOffset())
	sb.tween = TweenValue(&sb.tweenValue, target, float32(seconds), ease.OutQuad)
	sb.tween.apply = func() { sb.setOffset(sb.tweenValue) }
}

// Scrolling reports whether a ScrollTo animation is running.
func (sb *ScrollBox) Scrolling() bool { return sb.tween != nil && !sb.tween.Done }

// --- State machine ---

func (sb *ScrollBox) setHover(i int) {
	if i == sb.hoverIndex {
		return
	}
	sb.hoverIndex = i
	for _, fn := range sb.onHover {
		fn(i)
	}
}

func (sb *ScrollBox) endContentDrag(y float64) {
	if sb.tickCount > 0 {
		sb.speed = (sb.dragStartY - y) / float64(sb.tickCount)
	} else {
		sb.speed = 0
	}
	sb.tickCount = 0
	if sb.speed != 0 {
		sb.state = ScrollInertial
	} else {
		sb.state = ScrollIdle
	}
}

func (sb *ScrollBox) OnMouseDown(e Event) {
	sb.Surface.OnMouseDown(e)
	if e.Button != MouseButtonLeft {
		return
	}
	local := sb.toLocal(e).Pos()
	sb.tween.Stop()
	sb.tween = nil
	sb.speed = 0
	if sb.inContentColumn(local) {
		sb.state = ScrollContentDragging
		sb.dragStartY, sb.lastY = local.Y, local.Y
		sb.tickCount = 0
		sb.pressed, sb.pressPoint = true, local
		return
	}
	sb.state = ScrollBarDragging
	sb.barLastY = e.Y
}

func (sb *ScrollBox) OnMouseMove(e Event) {
	sb.Surface.OnMouseMove(e)
	local := sb.toLocal(e).Pos()
	if sb.state == ScrollContentDragging {
		sb.setOffset(sb.offset - (local.Y - sb.lastY))
		sb.lastY = local.Y
	}
	if sb.inContentColumn(local) {
		sb.setHover(sb.indexAt(local.Y))
	} else {
		sb.setHover(NoIndex)
	}
}

func (sb *ScrollBox) OnMouseUp(e Event) {
	sb.Surface.OnMouseUp(e)
	if e.Button != MouseButtonLeft {
		return
	}
	local := sb.toLocal(e).Pos()
	if sb.state == ScrollContentDragging {
		sb.endContentDrag(local.Y)
	}
	pressed := sb.pressed
	sb.pressed = false
	if !pressed || !sb.inContentColumn(local) {
		return
	}
	if math.Hypot(local.X-sb.pressPoint.X, local.Y-sb.pressPoint.Y) > sb.cfg.DragDeadZone {
		return
	}
	if i := sb.indexAt(local.Y); i != NoIndex {
		for _, fn := range sb.onClick {
			fn(i)
		}
	}
}

func (sb *ScrollBox) OnMouseLeave(e Event) {
	sb.Surface.OnMouseLeave(e)
	if sb.state == ScrollContentDragging {
		sb.endContentDrag(sb.toLocal(e).Y)
	}
	sb.pressed = false
	sb.setHover(NoIndex)
}

func (sb *ScrollBox) OnMouseWheel(e Event) {
	sb.Surface.OnMouseWheel(e)
	if sb.tween != nil {
		sb.tween.Stop()
		sb.tween = nil
	}
	sb.setOffset(sb.offset - e.WheelY*sb.cfg.Wheel)
}

// onParentMove drives scrollbar dragging. e is in the parent's space.
func (sb *ScrollBox) onParentMove(e Event) {
	if sb.state != ScrollBarDragging {
		return
	}
	if track := sb.trackLength(); track > 0 {
		sb.setOffset(sb.offset + (e.Y-sb.barLastY)*sb.MaxOffset()/track)
	}
	sb.barLastY = e.Y
}

func (sb *ScrollBox) onParentUp(e Event) {
	if sb.state == ScrollBarDragging && e.Button == MouseButtonLeft {
		sb.state = ScrollIdle
	}
}

// Tick ticks the visible rows, then advances drag timing, ScrollTo
// animation and inertia.
func (sb *ScrollBox) Tick() {
	sb.Surface.Tick()
	fps := framerate(sb.cfg.Clock)

	switch sb.state {
	case ScrollContentDragging:
		sb.tickCount++
		return
	case ScrollBarDragging:
		return
	}

	if sb.tween != nil {
		sb.tween.Update(float32(1 / fps))
		if sb.tween.Done {
			sb.tween = nil
		}
		return
	}

	if sb.speed == 0 {
		sb.state = ScrollIdle
		return
	}
	next := sb.offset + sb.speed
	sb.setOffset(next)
	if next != sb.offset {
		sb.speed = 0
		sb.state = ScrollIdle
		return
	}
	decay := sb.cfg.Friction / fps
	if math.Abs(sb.speed) <= decay {
		sb.speed = 0
		sb.state = ScrollIdle
		return
	}
	sb.speed -= math.Copysign(decay, sb.speed)
}

// redraw paints the background, the visible rows and the scrollbar.
func (sb *ScrollBox) redraw() {
	sb.Clear()
	sb.Fill(sb.cfg.BackgroundColor)

	eh := float64(sb.cfg.ElementHeight)
	visible := sb.trackLength()
	for i := int(sb.offset / eh); i < len(sb.contents); i++ {
		y := float64(i)*eh - sb.offset
		if y >= visible {
			break
		}
		c := sb.contents[i]
		c.SetPos(Vec2{0, y})
		if sb.onDrawContent != nil {
			sb.onDrawContent(i, c)
		}
		sb.drawChild(c, c, c)
	}

	x, w := sb.contentWidth(), float64(sb.cfg.ScrollBarWidth)
	sb.DrawRect(Rect{X: x, Y: 0, Width: w, Height: visible}, sb.cfg.TrackColor, 0)
	sb.DrawRect(Rect{X: x, Y: sb.ScrollBarOffset(), Width: w, Height: sb.ScrollBarLength()}, sb.cfg.BarColor, 0)
}

// DrawScrollBox redraws sb and composites it onto s. While drawn on s, sb
// listens to s for scrollbar drag moves and releases.
func (s *Surface) DrawScrollBox(sb *ScrollBox) {
	if !sb.binding.bound(s) {
		sb.binding.reset(s)
		sb.binding.add(EventMouseMove, sb.onParentMove)
		sb.binding.add(EventMouseUp, sb.onParentUp)
	}
	sb.redraw()
	s.drawChild(&sb.Surface, sb, sb)
}
