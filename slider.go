package replex

import "math"

// SliderStyle configures a Slider.
type SliderStyle struct {
	TrackColor Color
	FillColor  Color
	KnobColor  Color

	// TrackThickness defaults to 4.
	TrackThickness float64
	// KnobRadius defaults to half the slider height.
	KnobRadius float64
	// Step snaps values to min + k*Step. Zero means continuous.
	Step float64
}

// DefaultSliderStyle returns a gray track with a dark fill and knob.
func DefaultSliderStyle() SliderStyle {
	return SliderStyle{
		TrackColor: ColorLightGray,
		FillColor:  ColorGray,
		KnobColor:  ColorDarkGray,
	}
}

// wheelSteps is the number of wheel notches across a continuous slider.
const wheelSteps = 100

// Slider is a horizontal track with a draggable knob selecting a value in
// [min, max].
type Slider struct {
	InteractiveComponent
	Style SliderStyle

	min, max float64
	value    float64
	dragging bool

	onChange []func(float64)
	binding  parentBinding
}

// NewSlider creates a slider at min. It fails with ErrInvalidRange when
// min >= max or the step is negative.
func NewSlider(pos Vec2, size Size, min, max float64, style SliderStyle) (*Slider, error) {
	if !(min < max) || style.Step < 0 {
		return nil, ErrInvalidRange
	}
	if style.TrackThickness <= 0 {
		style.TrackThickness = 4
	}
	if style.KnobRadius <= 0 {
		style.KnobRadius = float64(size.H) / 2
	}
	return &Slider{
		InteractiveComponent: NewInteractiveComponent(pos, size),
		Style:                style,
		min:                  min,
		max:                  max,
		value:                min,
	}, nil
}

// Range returns the slider bounds.
func (sl *Slider) Range() (min, max float64) { return sl.min, sl.max }

// Value returns the current value.
func (sl *Slider) Value() float64 { return sl.value }

// Dragging reports whether the knob is held.
func (sl *Slider) Dragging() bool { return sl.dragging }

// SetValue clamps v to the range, snaps it to the step, and notifies
// OnChange listeners when the value changes.
func (sl *Slider) SetValue(v float64) {
	v = math.Min(math.Max(v, sl.min), sl.max)
	if st := sl.Style.Step; st > 0 {
		v = math.Min(sl.min+math.Round((v-sl.min)/st)*st, sl.max)
	}
	if v == sl.value {
		return
	}
	sl.value = v
	for _, fn := range sl.onChange {
		fn(v)
	}
}

// OnChange registers fn to receive new values.
func (sl *Slider) OnChange(fn func(float64)) { sl.onChange = append(sl.onChange, fn) }

// ratio returns the value's position along the track in [0, 1].
func (sl *Slider) ratio() float64 { return (sl.value - sl.min) / (sl.max - sl.min) }

func (sl *Slider) valueAt(x float64) float64 {
	w := float64(sl.Size().W)
	if w <= 0 {
		return sl.min
	}
	t := math.Min(math.Max((x-sl.Pos().X)/w, 0), 1)
	return sl.min + t*(sl.max-sl.min)
}

func (sl *Slider) OnMouseDown(e Event) {
	sl.InteractiveComponent.OnMouseDown(e)
	if e.Button != MouseButtonLeft {
		return
	}
	sl.dragging = true
	sl.SetValue(sl.valueAt(e.X))
}

func (sl *Slider) OnMouseWheel(e Event) {
	sl.InteractiveComponent.OnMouseWheel(e)
	step := sl.Style.Step
	if step <= 0 {
		step = (sl.max - sl.min) / wheelSteps
	}
	sl.SetValue(sl.value + e.WheelY*step)
}

func (sl *Slider) onParentMove(e Event) {
	if sl.dragging {
		sl.SetValue(sl.valueAt(e.X))
	}
}

func (sl *Slider) onParentUp(e Event) {
	if e.Button == MouseButtonLeft {
		sl.dragging = false
	}
}

func (sl *Slider) commands() []DrawCommand {
	pos, size := sl.Pos(), sl.Size()
	w := float64(size.W)
	cy := pos.Y + float64(size.H)/2
	th := sl.Style.TrackThickness
	fill := sl.ratio() * w
	return []DrawCommand{
		RectCommand(Rect{X: pos.X, Y: cy - th/2, Width: w, Height: th}, sl.Style.TrackColor, 0),
		RectCommand(Rect{X: pos.X, Y: cy - th/2, Width: fill, Height: th}, sl.Style.FillColor, 0),
		CircleCommand(Vec2{pos.X + fill, cy}, sl.Style.KnobRadius, sl.Style.KnobColor, 0),
	}
}

// DrawSlider draws sl and registers it as this frame's event target. While
// drawn on s, sl follows s's pointer moves during a drag.
func (s *Surface) DrawSlider(sl *Slider) {
	if !sl.binding.bound(s) {
		sl.binding.reset(s)
		sl.binding.add(EventMouseMove, sl.onParentMove)
		sl.binding.add(EventMouseUp, sl.onParentUp)
	}
	z, hasZ := sl.ZIndex()
	s.submit(z, hasZ, sl.commands()...)
	s.eventObjects = append(s.eventObjects, sl)
}
