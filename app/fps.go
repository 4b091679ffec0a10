package app

import "fmt"

// FPSCounter counts frames and produces a window title once per second.
type FPSCounter struct {
	Prefix string

	frames int
	last   float64
	fps    int
}

func NewFPSCounter(prefix string, now float64) *FPSCounter {
	return &FPSCounter{Prefix: prefix, last: now}
}

// Tick records one frame at time now (seconds). When a second or more has
// passed since the last report it returns the new title and true.
func (f *FPSCounter) Tick(now float64) (string, bool) {
	f.frames++
	elapsed := now - f.last
	if elapsed < 1 {
		return "", false
	}
	f.fps = int(float64(f.frames)/elapsed + 0.5)
	f.frames = 0
	f.last = now
	return f.Title(), true
}

// FPS is the last reported rate.
func (f *FPSCounter) FPS() int { return f.fps }

func (f *FPSCounter) Title() string {
	return fmt.Sprintf("%s - %d fps", f.Prefix, f.fps)
}
