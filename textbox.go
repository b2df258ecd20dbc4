package replex

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextBoxStyle configures the look of a TextBox. Font takes precedence over
// FontName; an empty FontName resolves to DefaultFontName.
type TextBoxStyle struct {
	Font            *Font
	FontName        string
	TextColor       Color
	BackgroundColor Color
	BorderColor     Color
	BorderThickness int
}

// DefaultTextBoxStyle returns black text on white with a one pixel black
// border.
func DefaultTextBoxStyle() TextBoxStyle {
	return TextBoxStyle{
		TextColor:       ColorBlack,
		BackgroundColor: ColorWhite,
		BorderColor:     ColorBlack,
		BorderThickness: 1,
	}
}

// TextBox is a bordered rectangle with centered text.
type TextBox struct {
	InteractiveComponent
	Style TextBoxStyle
	Text  string
}

// NewTextBox creates a text box.
func NewTextBox(pos Vec2, size Size, style TextBoxStyle, text string) *TextBox {
	return &TextBox{
		InteractiveComponent: NewInteractiveComponent(pos, size),
		Style:                style,
		Text:                 text,
	}
}

// Font returns the resolved font, or nil when the style names an
// unregistered font.
func (tb *TextBox) Font() *Font { return resolveFont(tb.Style.Font, tb.Style.FontName) }

// commands builds the draw commands for a box with the given colors.
func (tb *TextBox) commands(bg, fg Color) []DrawCommand {
	pos, size := tb.Pos(), tb.Size()
	b := float64(max(tb.Style.BorderThickness, 0))
	w, h := float64(size.W), float64(size.H)
	cmds := []DrawCommand{
		RectCommand(Rect{X: pos.X, Y: pos.Y, Width: w + 2*b, Height: h + 2*b}, tb.Style.BorderColor, 0),
		RectCommand(Rect{X: pos.X + b, Y: pos.Y + b, Width: w, Height: h}, bg, 0),
	}
	if f := tb.Font(); f != nil && tb.Text != "" {
		center := Vec2{pos.X + w/2, pos.Y + h/2}
		cmds = append(cmds, TextCommand(center, tb.Text, f, fg, AnchorCenter))
	}
	return cmds
}

// DrawTextBox draws tb and registers it as this frame's event target.
func (s *Surface) DrawTextBox(tb *TextBox) {
	z, hasZ := tb.ZIndex()
	s.submit(z, hasZ, tb.commands(tb.Style.BackgroundColor, tb.Style.TextColor)...)
	s.eventObjects = append(s.eventObjects, tb)
}

// --- Button ---

// ButtonStyle adds optional hover colors to TextBoxStyle.
type ButtonStyle struct {
	TextBoxStyle
	BackgroundHoverColor *Color
	TextHoverColor       *Color
}

// DefaultButtonStyle returns DefaultTextBoxStyle with a light gray hover
// background.
func DefaultButtonStyle() ButtonStyle {
	hover := ColorLightGray
	return ButtonStyle{TextBoxStyle: DefaultTextBoxStyle(), BackgroundHoverColor: &hover}
}

// Button is a TextBox that swaps colors while hovered and fires EventClick
// listeners when pressed and released with the left button.
type Button struct {
	TextBox
	BackgroundHoverColor *Color
	TextHoverColor       *Color

	pressed bool
}

// NewButton creates a button.
func NewButton(pos Vec2, size Size, style ButtonStyle, text string) *Button {
	return &Button{
		TextBox:              *NewTextBox(pos, size, style.TextBoxStyle, text),
		BackgroundHoverColor: style.BackgroundHoverColor,
		TextHoverColor:       style.TextHoverColor,
	}
}

// BackgroundRenderColor returns the background color for the current hover
// state.
func (b *Button) BackgroundRenderColor() Color {
	if b.MouseEntered() && b.BackgroundHoverColor != nil {
		return *b.BackgroundHoverColor
	}
	return b.Style.BackgroundColor
}

// TextRenderColor returns the text color for the current hover state.
func (b *Button) TextRenderColor() Color {
	if b.MouseEntered() && b.TextHoverColor != nil {
		return *b.TextHoverColor
	}
	return b.Style.TextColor
}

// OnClick registers fn as an EventClick listener.
func (b *Button) OnClick(fn func(Event)) CallbackHandle {
	return b.AddEventListener(EventClick, fn)
}

func (b *Button) OnMouseDown(e Event) {
	b.TextBox.OnMouseDown(e)
	if e.Button == MouseButtonLeft {
		b.pressed = true
	}
}

func (b *Button) OnMouseUp(e Event) {
	b.TextBox.OnMouseUp(e)
	if e.Button != MouseButtonLeft {
		return
	}
	if b.pressed {
		b.pressed = false
		b.fireClick(e)
	}
}

func (b *Button) OnMouseLeave(e Event) {
	b.TextBox.OnMouseLeave(e)
	b.pressed = false
}

// DrawButton draws b with its hover colors and registers it as this frame's
// event target.
func (s *Surface) DrawButton(b *Button) {
	z, hasZ := b.ZIndex()
	s.submit(z, hasZ, b.commands(b.BackgroundRenderColor(), b.TextRenderColor())...)
	s.eventObjects = append(s.eventObjects, b)
}

// --- TextInput ---

const (
	repeatDelay    = 0.3
	repeatInterval = 0.01
)

// keyChars maps printable keys to their unshifted and shifted characters.
var keyChars = func() map[ebiten.Key][2]rune {
	m := map[ebiten.Key][2]rune{
		ebiten.KeySpace:        {' ', ' '},
		ebiten.KeyMinus:        {'-', '_'},
		ebiten.KeyEqual:        {'=', '+'},
		ebiten.KeyBackquote:    {'`', '~'},
		ebiten.KeyQuote:        {'\'', '"'},
		ebiten.KeySemicolon:    {';', ':'},
		ebiten.KeyComma:        {',', '<'},
		ebiten.KeyPeriod:       {'.', '>'},
		ebiten.KeySlash:        {'/', '?'},
		ebiten.KeyBackslash:    {'\\', '|'},
		ebiten.KeyBracketLeft:  {'[', '{'},
		ebiten.KeyBracketRight: {']', '}'},
	}
	shifted := []rune(")!@#$%^&*(")
	for i := range 10 {
		m[ebiten.KeyDigit0+ebiten.Key(i)] = [2]rune{rune('0' + i), shifted[i]}
	}
	for i := range 26 {
		c := rune('a' + i)
		m[ebiten.KeyA+ebiten.Key(i)] = [2]rune{c, unicode.ToUpper(c)}
	}
	return m
}()

// keyRune returns the character a key produces under mods.
func keyRune(k ebiten.Key, mods KeyModifiers) (rune, bool) {
	pair, ok := keyChars[k]
	if !ok {
		return 0, false
	}
	shift := mods&ModShift != 0
	if unicode.IsLetter(pair[0]) && mods&ModCapsLock != 0 {
		shift = !shift
	}
	if shift {
		return pair[1], true
	}
	return pair[0], true
}

// TextInput is a TextBox that edits its text from key events while focused.
// Holding backspace deletes repeatedly after a short delay.
type TextInput struct {
	TextBox

	// MaxLength limits the text length in runes. Zero means unlimited.
	MaxLength int
	// Clock scales key repeat timing. Nil uses TPSClock.
	Clock FrameClock

	focused  bool
	deleting bool
	repeat   bool
	held     float64

	binding parentBinding
}

// NewTextInput creates a text input.
func NewTextInput(pos Vec2, size Size, style TextBoxStyle, text string) *TextInput {
	return &TextInput{TextBox: *NewTextBox(pos, size, style, text)}
}

// Focused reports whether the input accepts key events.
func (ti *TextInput) Focused() bool { return ti.focused }

// SetFocused focuses or blurs the input.
func (ti *TextInput) SetFocused(v bool) {
	ti.focused = v
	if !v {
		ti.deleting = false
	}
}

func (ti *TextInput) OnMouseDown(e Event) {
	ti.TextBox.OnMouseDown(e)
	if e.Button == MouseButtonLeft {
		ti.focused = true
	}
}

func (ti *TextInput) OnKeyDown(e Event) {
	ti.TextBox.OnKeyDown(e)
	if !ti.focused {
		return
	}
	if e.Key == ebiten.KeyBackspace {
		if ti.Text == "" {
			return
		}
		ti.deleting, ti.repeat, ti.held = true, false, 0
		ti.deleteRune()
		return
	}
	r, ok := keyRune(e.Key, e.Modifiers)
	if !ok {
		return
	}
	if ti.MaxLength > 0 && utf8.RuneCountInString(ti.Text) >= ti.MaxLength {
		return
	}
	ti.Text += string(r)
}

func (ti *TextInput) OnKeyUp(e Event) {
	ti.TextBox.OnKeyUp(e)
	if e.Key == ebiten.KeyBackspace {
		ti.deleting = false
	}
}

// Tick advances backspace repeat.
func (ti *TextInput) Tick() {
	if !ti.deleting {
		return
	}
	ti.held += 1 / framerate(ti.Clock)
	if !ti.repeat {
		if ti.held < repeatDelay {
			return
		}
		ti.repeat = true
		ti.held -= repeatDelay
		ti.deleteRune()
	}
	for ti.held >= repeatInterval && ti.deleting {
		ti.held -= repeatInterval
		ti.deleteRune()
	}
}

func (ti *TextInput) deleteRune() {
	_, n := utf8.DecodeLastRuneInString(ti.Text)
	ti.Text = ti.Text[:len(ti.Text)-n]
	if ti.Text == "" {
		ti.deleting = false
	}
}

// DrawTextInput draws ti like a TextBox and registers it for ticks and
// events. Every press on the root surface blurs it before dispatch, so only
// a press that reaches ti keeps it focused, whichever panel it lands in.
func (s *Surface) DrawTextInput(ti *TextInput) {
	if root := s.Root(); !ti.binding.bound(root) {
		ti.binding.reset(root)
		ti.binding.add(EventMouseDown, func(e Event) {
			if e.Button == MouseButtonLeft {
				ti.SetFocused(false)
			}
		})
	}
	z, hasZ := ti.ZIndex()
	s.submit(z, hasZ, ti.commands(ti.Style.BackgroundColor, ti.Style.TextColor)...)
	s.tickObjects = append(s.tickObjects, ti)
	s.eventObjects = append(s.eventObjects, ti)
}
