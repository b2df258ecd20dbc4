package replex

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and dispatch metrics.
// Only populated when the app is in debug mode.
type frameStats struct {
	events     int
	targets    int
	deferred   int
	commands   int
	tickTime   time.Duration
	drawTime   time.Duration
	renderTime time.Duration
}

// debugLog prints frame stats to stderr.
func (a *App) debugLog(stats frameStats) {
	if !a.debug {
		return
	}
	total := stats.tickTime + stats.drawTime + stats.renderTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[replex] frame %d | tick: %v | draw: %v | render: %v | total: %v\n",
		a.frames, stats.tickTime, stats.drawTime, stats.renderTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[replex] events: %d | targets: %d | deferred: %d | executed: %d\n",
		stats.events, stats.targets, stats.deferred, stats.commands)
}

// debugMaxTargets is the per-surface event target count above which a
// warning is printed. Hit testing is linear in this count.
const debugMaxTargets = 1000

func debugCheckTargetCount(s *Surface) {
	if n := len(s.eventObjects); n > debugMaxTargets {
		_, _ = fmt.Fprintf(os.Stderr, "[replex] warning: surface has %d event targets (threshold %d)\n",
			n, debugMaxTargets)
	}
}
