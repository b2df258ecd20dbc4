package replex

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStderr runs fn and returns what it wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugLogFrameStats(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetDebugMode(true)
	out := captureStderr(t, func() {
		a.debugLog(frameStats{events: 2, targets: 3, deferred: 4, commands: 5, tickTime: time.Millisecond})
	})
	for _, want := range []string{"[replex] frame", "events: 2", "targets: 3", "deferred: 4", "executed: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestReleaseModeSilent(t *testing.T) {
	a := newTestApp(t, nil)
	out := captureStderr(t, func() {
		runFrames(t, a, 2)
		a.debugLog(frameStats{})
	})
	if out != "" {
		t.Errorf("release mode wrote %q", out)
	}
}

func TestDebugModeLogsEveryFrame(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetDebugMode(true)
	out := captureStderr(t, func() { runFrames(t, a, 2) })
	if n := strings.Count(out, "[replex] frame"); n != 2 {
		t.Errorf("frame lines = %d, want 2: %q", n, out)
	}
}

func TestDebugTargetCountWarning(t *testing.T) {
	s := newTestSurface(Size{10, 10})
	for range debugMaxTargets + 1 {
		s.AddEventTarget(NewTextBox(Vec2{}, Size{1, 1}, DefaultTextBoxStyle(), ""))
	}
	out := captureStderr(t, func() { debugCheckTargetCount(s) })
	if !strings.Contains(out, "warning: surface has 1001 event targets") {
		t.Errorf("expected target count warning, got: %q", out)
	}
}
