package replex

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestPictureDrawCommands(t *testing.T) {
	src := &ebiten.Image{}
	tests := []struct {
		name  string
		size  Size
		want  DrawCommand
		scale bool
	}{
		{
			name: "natural size",
			size: Size{32, 16},
			want: ImageCommand(src, Vec2{5, 6}),
		},
		{
			name:  "rescaled",
			size:  Size{64, 8},
			want:  ImageRectCommand(src, Rect{X: 5, Y: 6, Width: 64, Height: 8}),
			scale: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(Size{100, 100})
			p := newPicture(Vec2{5, 6}, src, Size{32, 16})
			p.Rescale(tt.size)
			if p.Scaled() != tt.scale {
				t.Errorf("Scaled() = %v, want %v", p.Scaled(), tt.scale)
			}

			s.DrawPicture(p)

			got := recorded(t, s).Ops
			if len(got) != 1 {
				t.Fatalf("ops = %d, want 1", len(got))
			}
			if got[0].Type != tt.want.Type || got[0].Image != src {
				t.Errorf("op = %v with image %p, want %v with %p", got[0].Type, got[0].Image, tt.want.Type, src)
			}
			if diff := cmp.Diff(tt.want.Rect, got[0].Rect); diff != "" {
				t.Errorf("rect mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want.Points, got[0].Points); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
			if targets := s.EventTargets(); len(targets) != 1 || targets[0] != Target(p) {
				t.Errorf("EventTargets = %v, want the picture", targets)
			}
		})
	}
}

func TestPictureResetScale(t *testing.T) {
	p := newPicture(Vec2{}, &ebiten.Image{}, Size{10, 20})
	p.Rescale(Size{30, 40})
	p.ResetScale()
	if got := p.Size(); got != (Size{10, 20}) {
		t.Errorf("Size() = %v, want {10 20}", got)
	}
	if p.Scaled() {
		t.Error("Scaled() = true after ResetScale")
	}
}

func TestPictureClick(t *testing.T) {
	s := newTestSurface(Size{100, 100})
	p := newPicture(Vec2{10, 10}, &ebiten.Image{}, Size{20, 20})
	p.Rescale(Size{40, 40})
	var downs int
	p.AddEventListener(EventMouseDown, func(Event) { downs++ })

	s.DrawPicture(p)
	s.Dispatch(leftDown(45, 45)) // inside only after rescaling

	if downs != 1 {
		t.Errorf("MouseDown listener calls = %d, want 1", downs)
	}
}

func TestPictureNilSourceDrawsNothing(t *testing.T) {
	s := newTestSurface(Size{100, 100})
	p := NewPicture(Vec2{}, nil)
	p.Rescale(Size{10, 10})
	s.DrawPicture(p)
	if n := len(recorded(t, s).Ops); n != 0 {
		t.Errorf("ops = %d, want 0", n)
	}
}

func TestLoadPictureMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	_, err := LoadPicture(Vec2{}, path)
	if err == nil {
		t.Fatal("LoadPicture on a missing file should fail")
	}
	if !strings.Contains(err.Error(), "replex: load picture") {
		t.Errorf("error = %q, want replex prefix", err)
	}
}
