package replex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Command validity ---

func TestDrawCommandValid(t *testing.T) {
	src := NewRecordingCanvas(Size{1, 1})
	tests := []struct {
		name string
		cmd  DrawCommand
		want bool
	}{
		{"zero value", DrawCommand{}, false},
		{"fill", FillCommand(ColorBlack), true},
		{"rect", RectCommand(Rect{0, 0, 1, 1}, ColorBlack, 0), true},
		{"circle", CircleCommand(Vec2{}, 3, ColorBlack, 0), true},
		{"circle without center", DrawCommand{Type: CommandCircle}, false},
		{"line", LineCommand(Vec2{}, Vec2{1, 1}, ColorBlack, 1, false), true},
		{"line with one point", DrawCommand{Type: CommandLine, Points: []Vec2{{}}}, false},
		{"lines", LinesCommand([]Vec2{{}, {1, 1}}, false, ColorBlack, 1, false), true},
		{"text with nil font", TextCommand(Vec2{}, "x", nil, ColorBlack, AnchorTopLeft), true},
		{"nil image", ImageCommand(nil, Vec2{}), false},
		{"scaled image", ImageRectCommand(&ebiten.Image{}, Rect{0, 0, 4, 4}), true},
		{"scaled nil image", ImageRectCommand(nil, Rect{0, 0, 4, 4}), false},
		{"scaled image into empty rect", ImageRectCommand(&ebiten.Image{}, Rect{0, 0, 0, 4}), false},
		{"canvas", CanvasCommand(src, Vec2{}), true},
		{"nil canvas", CanvasCommand(nil, Vec2{}), false},
		{"unknown type", DrawCommand{Type: CommandType(200)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.valid(); got != tt.want {
				t.Errorf("valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Execution ---

func TestDrawCommandExecuteSkipsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		cmd  DrawCommand
		want []CommandType
	}{
		{"tiny circle", CircleCommand(Vec2{}, 0.9, ColorBlack, 0), nil},
		{"thin line", LineCommand(Vec2{}, Vec2{4, 4}, ColorBlack, 0.5, false), nil},
		{"thin polyline", LinesCommand([]Vec2{{}, {1, 0}, {1, 1}}, true, ColorBlack, 0, false), nil},
		{"nil font", TextCommand(Vec2{}, "x", nil, ColorBlack, AnchorTopLeft), nil},
		{"stroked circle", CircleCommand(Vec2{}, 2, ColorBlack, 1), []CommandType{CommandCircle}},
		{"open polyline", LinesCommand([]Vec2{{}, {1, 0}, {1, 1}}, false, ColorBlack, 1, false),
			[]CommandType{CommandLine, CommandLine}},
		{"closed polyline", LinesCommand([]Vec2{{}, {1, 0}, {1, 1}}, true, ColorBlack, 1, false),
			[]CommandType{CommandLine, CommandLine, CommandLine}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRecordingCanvas(Size{10, 10})
			tt.cmd.execute(rc)
			got := rc.Types()
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrokedEllipseIsClosedPolyline(t *testing.T) {
	rc := NewRecordingCanvas(Size{10, 10})
	cmd := EllipseCommand(Rect{0, 0, 10, 4}, ColorBlack, 1)
	cmd.execute(rc)
	if n := len(rc.Ops); n != ellipseSegments {
		t.Errorf("segments = %d, want %d", n, ellipseSegments)
	}
}

func TestEllipsePointsInscribed(t *testing.T) {
	pts := ellipsePoints(Rect{10, 20, 40, 20}, 4)
	want := []Vec2{{50, 30}, {30, 40}, {10, 30}, {30, 20}}
	opt := cmp.Comparer(func(a, b float64) bool { return a-b < 1e-9 && b-a < 1e-9 })
	if diff := cmp.Diff(want, pts, opt); diff != "" {
		t.Errorf("ellipsePoints mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordingCanvasReplay(t *testing.T) {
	rc := NewRecordingCanvas(Size{10, 10})
	rc.Fill(ColorWhite)
	rc.StrokeRect(Rect{1, 1, 2, 2}, 1, ColorBlack)
	rc.DrawCanvas(NewRecordingCanvas(Size{1, 1}), Vec2{3, 3})

	dst := NewRecordingCanvas(Size{10, 10})
	rc.Replay(dst)
	if diff := cmp.Diff(rc.Types(), dst.Types()); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}

	rc.Clear()
	if len(rc.Ops) != 0 {
		t.Errorf("Ops after Clear = %d, want 0", len(rc.Ops))
	}
}

// --- Registry ---

func TestRegistryGrowsSlots(t *testing.T) {
	var r drawRegistry
	rc := NewRecordingCanvas(Size{1, 1})
	if err := r.register(3, FillCommand(ColorBlack), rc); err != nil {
		t.Fatal(err)
	}
	if len(r.slots) != 4 {
		t.Errorf("slots = %d, want 4", len(r.slots))
	}
	if err := r.register(1, FillCommand(ColorBlack), rc); err != nil {
		t.Fatal(err)
	}
	if len(r.slots) != 4 {
		t.Errorf("slots after lower z = %d, want 4", len(r.slots))
	}
	if got := r.pending(); got != 2 {
		t.Errorf("pending = %d, want 2", got)
	}
	if len(rc.Ops) != 0 {
		t.Error("unlocked registration must not draw")
	}
}

func TestRegistryLockedExecutes(t *testing.T) {
	r := drawRegistry{locked: true}
	rc := NewRecordingCanvas(Size{1, 1})
	if err := r.register(7, FillCommand(ColorBlack), rc); err != nil {
		t.Fatal(err)
	}
	if r.pending() != 0 || len(r.slots) != 0 {
		t.Error("locked registration must not be deferred")
	}
	if len(rc.Ops) != 1 {
		t.Errorf("ops = %d, want 1", len(rc.Ops))
	}
	// Validation still applies while locked.
	if err := r.register(-2, FillCommand(ColorBlack), rc); !errors.Is(err, ErrNegativeZIndex) {
		t.Errorf("register(-2) = %v, want ErrNegativeZIndex", err)
	}
}

func TestRegistryFlushUnlocks(t *testing.T) {
	var r drawRegistry
	rc := NewRecordingCanvas(Size{1, 1})
	_ = r.register(0, FillCommand(ColorBlack), rc)
	if n := r.flush(rc); n != 1 {
		t.Errorf("flush = %d, want 1", n)
	}
	if r.locked {
		t.Error("registry still locked after flush")
	}
	_ = r.register(0, FillCommand(ColorWhite), rc)
	if r.pending() != 1 {
		t.Error("registration after flush should be deferred again")
	}
}
