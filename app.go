package replex

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppEvent identifies an application lifecycle event.
type AppEvent uint8

const (
	EventRun  AppEvent = iota // first Update of the game loop
	EventQuit                 // the loop is about to terminate
	appEventCount
)

const (
	defaultFramerate     = 60
	defaultScreenshotDir = "screenshots"
)

// RunConfig configures the window and frame loop.
type RunConfig struct {
	Title string
	// Width and Height set the window and logical screen size. Both must
	// be positive.
	Width, Height int
	// Framerate sets ebiten's ticks per second. Default 60.
	Framerate int
	Resizable bool
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug prints per-frame stats to stderr.
	Debug bool
	// ScreenshotDir receives PNGs from Screenshot. Default "screenshots".
	ScreenshotDir string
}

// App runs a Scene inside an ebiten game loop. It implements ebiten.Game.
type App struct {
	cfg   RunConfig
	scene Scene
	input InputSource

	events      []Event
	injectQueue []Event
	runner      *TestRunner

	screenshotQueue []string
	// ScreenshotDir is the directory where screenshots are written.
	ScreenshotDir string

	store     EntityStore
	debug     bool
	fps       *fpsOverlay
	listeners [appEventCount][]func()

	started bool
	quit    bool
	frames  uint64
}

// NewApp creates an app running scene. It fails with ErrNoWindow when the
// window size is not configured and ErrNoScene when scene is nil.
func NewApp(scene Scene, cfg RunConfig) (*App, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrNoWindow
	}
	if scene == nil {
		return nil, ErrNoScene
	}
	if cfg.Framerate <= 0 {
		cfg.Framerate = defaultFramerate
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	a := &App{
		cfg:           cfg,
		input:         NewEbitenInput(),
		ScreenshotDir: cfg.ScreenshotDir,
		debug:         cfg.Debug,
	}
	if cfg.ShowFPS {
		a.fps = newFPSOverlay()
	}
	a.SetScene(scene)
	return a, nil
}

// Run creates an App for scene and runs it until the window closes or
// Terminate is called.
func Run(scene Scene, cfg RunConfig) error {
	a, err := NewApp(scene, cfg)
	if err != nil {
		return err
	}
	return a.Run()
}

// Run opens the window and blocks in the ebiten game loop.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	ebiten.SetTPS(a.cfg.Framerate)
	if a.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(a)
}

// Scene returns the active scene.
func (a *App) Scene() Scene { return a.scene }

// SetScene replaces the active scene, calling OnEscapeScene on the old one
// and OnEnterScene on the new one when implemented.
func (a *App) SetScene(s Scene) {
	if s == nil {
		return
	}
	if old, ok := a.scene.(SceneEscaper); ok {
		old.OnEscapeScene()
	}
	a.scene = s
	if e, ok := s.(SceneEnterer); ok {
		e.OnEnterScene()
	}
}

// SetInputSource replaces the input source. Nil disables real input, which
// leaves only injected events.
func (a *App) SetInputSource(src InputSource) { a.input = src }

// SetEntityStore sets the optional ECS bridge. Events delivered to
// components with a non-zero EntityID are forwarded to it.
func (a *App) SetEntityStore(store EntityStore) { a.store = store }

// SetDebugMode enables per-frame stats on stderr.
func (a *App) SetDebugMode(enabled bool) { a.debug = enabled }

// SetTestRunner attaches a test runner. Its step runs at the start of each
// Update.
func (a *App) SetTestRunner(r *TestRunner) { a.runner = r }

// AddEventListener registers fn for an application lifecycle event.
func (a *App) AddEventListener(kind AppEvent, fn func()) {
	if kind < appEventCount && fn != nil {
		a.listeners[kind] = append(a.listeners[kind], fn)
	}
}

func (a *App) fire(kind AppEvent) {
	for _, fn := range a.listeners[kind] {
		fn()
	}
}

// Terminate makes the next Update end the game loop.
func (a *App) Terminate() { a.quit = true }

// Frames returns the number of completed frames.
func (a *App) Frames() uint64 { return a.frames }

// Update implements ebiten.Game.
func (a *App) Update() error {
	return a.update(ebiten.IsWindowBeingClosed())
}

func (a *App) update(closing bool) error {
	if !a.started {
		a.started = true
		a.fire(EventRun)
	}
	if closing {
		a.quit = true
	}
	if a.quit {
		a.fire(EventQuit)
		return ebiten.Termination
	}
	if a.runner != nil {
		a.runner.step(a)
	}

	a.events = a.events[:0]
	if e, ok := a.popInjected(); ok {
		a.events = append(a.events, e)
	} else if a.input != nil {
		a.events = a.input.Poll(a.events)
	}
	if a.fps != nil {
		a.fps.update(1 / framerate(nil))
	}
	a.frame()
	return nil
}

// frame dispatches this frame's events, ticks, draws and renders the scene.
func (a *App) frame() {
	var (
		stats frameStats
		t0    time.Time
	)
	root := a.scene.Surface()
	root.SetEntityStore(a.store)

	stats.events = len(a.events)
	stats.targets = len(root.eventObjects)
	for _, e := range a.events {
		root.Dispatch(e)
	}

	if a.debug {
		t0 = time.Now()
	}
	root.Tick()
	if a.debug {
		stats.tickTime = time.Since(t0)
		t0 = time.Now()
	}

	root.Clear()
	a.scene.Draw()
	if a.debug {
		stats.drawTime = time.Since(t0)
		stats.deferred = root.PendingDrawings()
		t0 = time.Now()
	}

	stats.commands = root.Render()
	a.frames++
	if a.debug {
		stats.renderTime = time.Since(t0)
		a.debugLog(stats)
		debugCheckTargetCount(root)
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if img := a.scene.Surface().Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if a.fps != nil {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}
