package replex

import (
	"errors"
	"testing"
)

// newTestDropdown builds a 100x20 dropdown at (10, 10) on a 400x400 root.
func newTestDropdown(t *testing.T, items ...string) (*Surface, *Dropdown) {
	t.Helper()
	useRecordingCanvases(t)
	style := DefaultDropdownStyle()
	style.Clock = FixedClock(60)
	d, err := NewDropdown(Vec2{10, 10}, Size{100, 20}, items, style)
	if err != nil {
		t.Fatalf("NewDropdown: %v", err)
	}
	root := NewSurface(Vec2{}, Size{400, 400})
	root.DrawDropdown(d)
	return root, d
}

// redraw starts a new frame on root with d drawn.
func redraw(root *Surface, d *Dropdown) {
	root.Tick()
	root.Clear()
	root.DrawDropdown(d)
	root.Render()
}

func TestNewDropdownNoItems(t *testing.T) {
	useRecordingCanvases(t)
	d, err := NewDropdown(Vec2{}, Size{100, 20}, nil, DefaultDropdownStyle())
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("err = %v, want ErrNoItems", err)
	}
	if d != nil {
		t.Error("dropdown should be nil on error")
	}
}

func TestDropdownInitialState(t *testing.T) {
	_, d := newTestDropdown(t, "a", "b", "c")
	if i, item := d.Selected(); i != 0 || item != "a" {
		t.Errorf("Selected = (%d, %q), want (0, a)", i, item)
	}
	if d.IsOpen() {
		t.Error("new dropdown should be closed")
	}
	if d.Button().Text != "a" {
		t.Errorf("button text = %q, want a", d.Button().Text)
	}
	if got := d.List().Size(); got != (Size{100, 60}) {
		t.Errorf("list size = %v, want {100 60}", got)
	}
	if z, ok := d.List().ZIndex(); !ok || z != defaultListZIndex {
		t.Errorf("list z = (%d, %v), want (%d, true)", z, ok, defaultListZIndex)
	}
}

func TestDropdownOpenAndSelect(t *testing.T) {
	root, d := newTestDropdown(t, "a", "b", "c")
	var changes []string
	d.OnChange(func(_ int, item string) { changes = append(changes, item) })

	root.Dispatch(leftDown(50, 20))
	root.Dispatch(leftUp(50, 20))
	if !d.IsOpen() {
		t.Fatal("button click should open the list")
	}

	redraw(root, d)
	if got := d.List().Pos(); got != (Vec2{10, 30}) {
		t.Fatalf("list pos = %v, want {10 30}", got)
	}

	// Row 1 spans y 50..70 in root space.
	root.Dispatch(leftDown(50, 55))
	root.Dispatch(leftUp(50, 55))

	if d.IsOpen() {
		t.Error("selecting should close the list")
	}
	if i, item := d.Selected(); i != 1 || item != "b" {
		t.Errorf("Selected = (%d, %q), want (1, b)", i, item)
	}
	if d.Button().Text != "b" {
		t.Errorf("button text = %q, want b", d.Button().Text)
	}
	if len(changes) != 1 || changes[0] != "b" {
		t.Errorf("changes = %v, want [b]", changes)
	}
}

func TestDropdownListAboveSibling(t *testing.T) {
	root, d := newTestDropdown(t, "a", "b", "c")
	d.Open()
	sibling := NewButton(Vec2{10, 30}, Size{100, 60}, DefaultButtonStyle(), "under")
	clicked := false
	sibling.OnClick(func(Event) { clicked = true })

	root.Tick()
	root.DrawDropdown(d)
	root.DrawButton(sibling)

	if got := root.Pick(Vec2{50, 55}); got != Target(d.List()) {
		t.Fatalf("Pick = %T, want the open list", got)
	}
	root.Dispatch(leftDown(50, 55))
	root.Dispatch(leftUp(50, 55))
	if clicked {
		t.Error("sibling under the list must not receive the click")
	}
}

func TestDropdownPressOutsideCloses(t *testing.T) {
	root, d := newTestDropdown(t, "a", "b")
	d.Open()
	redraw(root, d)

	root.Dispatch(leftDown(300, 300))
	if d.IsOpen() {
		t.Error("press outside should close the list")
	}
}

func TestDropdownToggle(t *testing.T) {
	_, d := newTestDropdown(t, "a")
	d.Toggle()
	d.Toggle()
	if d.IsOpen() {
		t.Error("two toggles should leave the list closed")
	}
}

func TestDropdownOpenScrollsToSelected(t *testing.T) {
	_, d := newTestDropdown(t, "a", "b", "c", "d", "e", "f", "g", "h")
	if err := d.Select(6); err != nil {
		t.Fatal(err)
	}
	d.Open()
	for i := 0; i < 60 && d.List().Scrolling(); i++ {
		d.List().Tick()
	}
	// 8 rows of 20 in a 100 tall list: max offset 60.
	if got := d.List().Offset(); got < 59.99 || got > 60.01 {
		t.Errorf("Offset = %v, want ~60", got)
	}
}

func TestPlaceBelow(t *testing.T) {
	tests := []struct {
		name               string
		above, below, boxH float64
		want               bool
	}{
		{"fits below", 10, 100, 60, true},
		{"fits both", 100, 100, 60, true},
		{"fits only above", 100, 10, 60, false},
		{"neither, below larger", 20, 40, 60, true},
		{"neither, above larger", 40, 20, 60, false},
		{"neither, equal", 30, 30, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placeBelow(tt.above, tt.below, tt.boxH); got != tt.want {
				t.Errorf("placeBelow(%v, %v, %v) = %v, want %v", tt.above, tt.below, tt.boxH, got, tt.want)
			}
		})
	}
}

func TestDropdownPlaceAbove(t *testing.T) {
	_, d := newTestDropdown(t, "a", "b", "c")
	d.Button().SetPos(Vec2{10, 70})
	d.place(100)
	if !d.OpensAbove() {
		t.Fatal("list should open above")
	}
	if got := d.List().Pos(); got != (Vec2{10, 10}) {
		t.Errorf("list pos = %v, want {10 10}", got)
	}
}

func TestDropdownSelectOutOfRange(t *testing.T) {
	_, d := newTestDropdown(t, "a")
	if err := d.Select(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Select(1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDropdownItemEdits(t *testing.T) {
	_, d := newTestDropdown(t, "a", "b", "c")
	_ = d.Select(2)

	if err := d.RemoveItem(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RemoveItem(5) = %v, want ErrIndexOutOfRange", err)
	}
	if err := d.RemoveItem(0); err != nil {
		t.Fatal(err)
	}
	if i, item := d.Selected(); i != 1 || item != "c" {
		t.Errorf("Selected = (%d, %q), want (1, c)", i, item)
	}
	if got := d.List().Size().H; got != 40 {
		t.Errorf("list height = %d, want 40", got)
	}

	if err := d.RemoveItem(1); err != nil {
		t.Fatal(err)
	}
	if i, item := d.Selected(); i != 0 || item != "b" {
		t.Errorf("Selected = (%d, %q), want (0, b)", i, item)
	}
	if err := d.RemoveItem(0); !errors.Is(err, ErrNoItems) {
		t.Errorf("removing the last item = %v, want ErrNoItems", err)
	}

	for _, item := range []string{"x", "y", "z", "w", "v", "u"} {
		d.AddItem(item)
	}
	if got := d.List().Size().H; got != 100 {
		t.Errorf("list height = %d, want 100 (capped at 5 rows)", got)
	}
	if n := len(d.List().Contents()); n != 7 {
		t.Errorf("list rows = %d, want 7", n)
	}
}
