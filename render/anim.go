package render

import (
	"time"

	"github.com/csboard/st7789p3/imagepal"
)

// AnimState is the playback state of an Animation.
type AnimState int

const (
	Stopped AnimState = iota
	Playing
	Paused
)

// Frame is one step of an animation: an image, how long it stays on
// screen, and where it is drawn relative to the animation origin.
type Frame struct {
	Image    *imagepal.Image
	Duration time.Duration
	OffsetX  int
	OffsetY  int
}

// Animation advances through a frame list on a wall-clock timer. The frame
// slice is caller-owned and not copied. An Animation lives for one
// animated sequence and is not safe for concurrent use.
type Animation struct {
	frames  []Frame
	current int
	last    time.Time
	loop    bool
	state   AnimState

	now func() time.Time
}

// NewAnimation creates an animation over frames. With loop set, the
// sequence wraps to frame 0 after the last frame; otherwise it stops.
func NewAnimation(frames []Frame, loop bool) *Animation {
	return &Animation{frames: frames, loop: loop, now: time.Now}
}

// Start begins playback at the current frame and resets the elapsed-time
// reference to now. A finished non-looping animation rewinds to frame 0,
// so restarting a completed sequence replays it.
func (a *Animation) Start() {
	if a.current >= len(a.frames) {
		a.current = 0
	}
	a.state = Playing
	a.last = a.now()
}

// Stop halts playback.
func (a *Animation) Stop() { a.state = Stopped }

// Pause toggles between Playing and Paused. Resuming resets the
// elapsed-time reference, so time spent paused is not caught up.
func (a *Animation) Pause() {
	switch a.state {
	case Playing:
		a.state = Paused
	case Paused:
		a.state = Playing
		a.last = a.now()
	}
}

// Reset rewinds to frame 0 and resets the elapsed-time reference without
// changing the playback state.
func (a *Animation) Reset() {
	a.current = 0
	a.last = a.now()
}

// Update advances the animation when the current frame's duration has
// elapsed. It reports whether the frame changed. Call it once per tick;
// it is a no-op unless Playing. A non-looping animation transitions to
// Stopped after its last frame.
func (a *Animation) Update() bool {
	if a.state != Playing || len(a.frames) == 0 {
		return false
	}

	now := a.now()
	if now.Sub(a.last) < a.frames[a.current].Duration {
		return false
	}

	a.current++
	if a.current >= len(a.frames) {
		if !a.loop {
			a.state = Stopped
			return false
		}
		a.current = 0
	}
	a.last = now
	return true
}

// CurrentFrame returns the frame to display, or nil when the animation is
// not playing or the index is out of range.
func (a *Animation) CurrentFrame() *Frame {
	if a.state != Playing || a.current >= len(a.frames) {
		return nil
	}
	return &a.frames[a.current]
}

// State returns the playback state.
func (a *Animation) State() AnimState { return a.state }

// IsPlaying reports whether the animation is playing.
func (a *Animation) IsPlaying() bool { return a.state == Playing }
