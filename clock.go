package replex

import "github.com/hajimehoshi/ebiten/v2"

// FrameClock reports the measured frame rate. Per-second physics such as
// scroll friction and key repeat are scaled by it.
type FrameClock interface {
	CurrentFramerate() float64
}

// TPSClock reads ebiten's measured ticks per second, falling back to the
// configured TPS before the first measurement is available.
type TPSClock struct{}

func (TPSClock) CurrentFramerate() float64 {
	if tps := ebiten.ActualTPS(); tps > 0 {
		return tps
	}
	return float64(ebiten.TPS())
}

// FixedClock reports a constant frame rate.
type FixedClock float64

func (c FixedClock) CurrentFramerate() float64 { return float64(c) }

const fallbackFramerate = 60

// framerate returns a usable positive frame rate from c.
func framerate(c FrameClock) float64 {
	if c == nil {
		c = TPSClock{}
	}
	if fps := c.CurrentFramerate(); fps > 0 {
		return fps
	}
	return fallbackFramerate
}
