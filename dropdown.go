package replex

import (
	"fmt"
	"slices"
)

const (
	defaultMaxVisibleRows = 5
	defaultListZIndex     = 100
	revealDuration        = 0.15 // seconds
)

// DropdownStyle configures a Dropdown.
type DropdownStyle struct {
	Button ButtonStyle

	RowColor      Color
	RowHoverColor Color
	RowTextColor  Color

	// MaxVisibleRows caps the list height. Default 5.
	MaxVisibleRows int
	// ListZIndex orders the open list above its siblings. Default 100.
	ListZIndex int
	// ScrollBarWidth is passed to the list. Default 12.
	ScrollBarWidth int

	// Clock drives the list's physics and reveal animation.
	Clock FrameClock
}

// DefaultDropdownStyle returns a white dropdown with light gray row hover.
func DefaultDropdownStyle() DropdownStyle {
	return DropdownStyle{
		Button:        DefaultButtonStyle(),
		RowColor:      ColorWhite,
		RowHoverColor: ColorLightGray,
		RowTextColor:  ColorBlack,
	}
}

func (s DropdownStyle) withDefaults() DropdownStyle {
	if s.MaxVisibleRows <= 0 {
		s.MaxVisibleRows = defaultMaxVisibleRows
	}
	if s.ListZIndex <= 0 {
		s.ListZIndex = defaultListZIndex
	}
	if s.ScrollBarWidth <= 0 {
		s.ScrollBarWidth = defaultScrollBarWidth
	}
	return s
}

// Dropdown is a button that opens a scrolling list of items. It is not hit
// tested itself: its button is always drawn and its list only while open.
type Dropdown struct {
	style DropdownStyle
	items []string

	button *Button
	list   *ScrollBox

	selected int
	open     bool
	above    bool

	onChange []func(int, string)
	binding  parentBinding
}

// NewDropdown creates a dropdown showing items, with the first selected.
func NewDropdown(pos Vec2, size Size, items []string, style DropdownStyle) (*Dropdown, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	style = style.withDefaults()
	d := &Dropdown{
		style: style,
		items: slices.Clone(items),
	}
	d.button = NewButton(pos, size, style.Button, items[0])
	d.button.OnClick(func(Event) { d.Toggle() })

	contents := make([]*Surface, len(items))
	for i := range contents {
		contents[i] = d.newRow()
	}
	list, err := NewScrollBox(pos, d.listSize(), contents, ScrollBoxConfig{
		ElementHeight:  size.H,
		ScrollBarWidth: style.ScrollBarWidth,
		Clock:          style.Clock,
	})
	if err != nil {
		return nil, err
	}
	_ = list.SetZIndex(style.ListZIndex)
	list.OnDrawContent(d.drawRow)
	list.OnClick(func(i int) { _ = d.Select(i) })
	d.list = list
	return d, nil
}

// Button returns the toggle button.
func (d *Dropdown) Button() *Button { return d.button }

// List returns the popup list.
func (d *Dropdown) List() *ScrollBox { return d.list }

// Items returns the items. The returned slice MUST NOT be mutated.
func (d *Dropdown) Items() []string { return d.items }

// Selected returns the selected index and item.
func (d *Dropdown) Selected() (int, string) { return d.selected, d.items[d.selected] }

// IsOpen reports whether the list is showing.
func (d *Dropdown) IsOpen() bool { return d.open }

// OpensAbove reports whether the list was last placed above the button.
func (d *Dropdown) OpensAbove() bool { return d.above }

// OnChange registers fn to run after the selection changes.
func (d *Dropdown) OnChange(fn func(index int, item string)) {
	d.onChange = append(d.onChange, fn)
}

// Open shows the list and scrolls the selected row into view.
func (d *Dropdown) Open() {
	if d.open {
		return
	}
	d.open = true
	target := float64(d.selected * d.button.Size().H)
	d.list.ScrollTo(target, revealDuration)
}

// Close hides the list.
func (d *Dropdown) Close() { d.open = false }

// Toggle opens a closed list and closes an open one.
func (d *Dropdown) Toggle() {
	if d.open {
		d.Close()
	} else {
		d.Open()
	}
}

// Select selects item i, updates the button label and closes the list.
func (d *Dropdown) Select(i int) error {
	if i < 0 || i >= len(d.items) {
		return fmt.Errorf("replex: select item %d: %w", i, ErrIndexOutOfRange)
	}
	d.selected = i
	d.button.Text = d.items[i]
	d.Close()
	for _, fn := range d.onChange {
		fn(i, d.items[i])
	}
	return nil
}

// AddItem appends an item.
func (d *Dropdown) AddItem(item string) {
	d.items = append(d.items, item)
	d.list.AddContent(d.newRow())
	d.list.Resize(d.listSize())
}

// RemoveItem removes item i. Removing the last remaining item fails with
// ErrNoItems.
func (d *Dropdown) RemoveItem(i int) error {
	if i < 0 || i >= len(d.items) {
		return fmt.Errorf("replex: remove item %d: %w", i, ErrIndexOutOfRange)
	}
	if len(d.items) == 1 {
		return ErrNoItems
	}
	d.items = slices.Delete(d.items, i, i+1)
	if err := d.list.RemoveContent(i); err != nil {
		return err
	}
	d.list.Resize(d.listSize())
	if i < d.selected || d.selected >= len(d.items) {
		d.selected--
	}
	d.button.Text = d.items[d.selected]
	return nil
}

func (d *Dropdown) rows() int { return min(len(d.items), d.style.MaxVisibleRows) }

func (d *Dropdown) listSize() Size {
	bs := d.button.Size()
	return Size{W: bs.W, H: d.rows() * bs.H}
}

func (d *Dropdown) newRow() *Surface {
	bs := d.button.Size()
	return NewSurface(Vec2{}, Size{W: bs.W - d.style.ScrollBarWidth, H: bs.H})
}

func (d *Dropdown) drawRow(i int, row *Surface) {
	bg := d.style.RowColor
	if i == d.list.HoverIndex() {
		bg = d.style.RowHoverColor
	}
	sz := row.Size()
	row.Clear()
	row.Fill(bg)
	row.DrawText(Vec2{float64(sz.W) / 2, float64(sz.H) / 2}, d.items[i], d.button.Font(), d.style.RowTextColor, AnchorCenter)
}

// placeBelow decides the list side: below when it fits there, or when it
// fits on neither side but below has more room.
func placeBelow(spaceAbove, spaceBelow, boxH float64) bool {
	return spaceBelow >= boxH || (spaceAbove < boxH && spaceBelow > spaceAbove)
}

// place positions the list against the button within a window of height
// windowH.
func (d *Dropdown) place(windowH float64) {
	bp, bs := d.button.Pos(), d.button.Size()
	listH := float64(d.list.Size().H)
	top := bp.Y
	bottom := bp.Y + float64(bs.H)
	d.above = !placeBelow(top, windowH-bottom, listH)
	if d.above {
		d.list.SetPos(Vec2{bp.X, top - listH})
	} else {
		d.list.SetPos(Vec2{bp.X, bottom})
	}
}

// DrawDropdown draws d's button and, while open, its list above every
// sibling without a higher z-index. A press elsewhere on s closes the list.
func (s *Surface) DrawDropdown(d *Dropdown) {
	if !d.binding.bound(s) {
		d.binding.reset(s)
		d.binding.add(EventMouseDown, func(e Event) {
			p := e.Pos()
			if d.open && !d.button.HitTest(p) && !d.list.HitTest(p) {
				d.Close()
			}
		})
	}
	s.DrawButton(d.button)
	if d.open {
		d.place(float64(s.Size().H))
		s.DrawScrollBox(d.list)
	}
}
