package replex

// Scene is one screen of an application. Each frame the App dispatches
// input to Surface(), ticks it, calls Draw to re-declare its children, and
// renders its deferred drawings.
type Scene interface {
	Surface() *Surface
	Draw()
}

// SceneEnterer is implemented by scenes that react to becoming active.
type SceneEnterer interface {
	OnEnterScene()
}

// SceneEscaper is implemented by scenes that react to being replaced.
type SceneEscaper interface {
	OnEscapeScene()
}

// funcScene adapts a draw function to the Scene interface.
type funcScene struct {
	root *Surface
	draw func(root *Surface)
}

// NewScene creates a scene with a root surface of the given size. draw is
// called every frame with the root surface.
func NewScene(size Size, draw func(root *Surface)) Scene {
	return &funcScene{root: NewSurface(Vec2{}, size), draw: draw}
}

func (s *funcScene) Surface() *Surface { return s.root }

func (s *funcScene) Draw() {
	if s.draw != nil {
		s.draw(s.root)
	}
}
