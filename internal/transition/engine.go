package transition

import (
	"image"
	"time"
)

// Stage is the visual surface the engine drives. Implementations apply the
// property changes to whatever hosts the image; all calls arrive on the UI
// thread.
type Stage interface {
	// SetOffset positions the image horizontally as a fraction of the stage
	// width: 0 is centred, -1 fully off the left edge, +1 fully off the right.
	SetOffset(frac float32)
	// SetOpacity sets the image opacity, 0 transparent through 1 opaque.
	SetOpacity(opacity float32)
	// SetScale scales the image around its centre; 1 is natural size.
	SetScale(scale float32)
	// Install replaces the displayed bitmap. A nil image clears the display.
	Install(img image.Image)
}

// Animation is a handle to a running property interpolation.
type Animation interface {
	Stop()
}

// Animator runs a timed interpolation. tick is called with progress values
// from 0 to 1 on the UI thread; done is called exactly once after the final
// tick. The production implementation wraps the toolkit's animation driver,
// tests substitute a manual stepper.
type Animator interface {
	Animate(d time.Duration, tick func(progress float32), done func()) Animation
}

// State names the engine's position in the two-phase switch sequence.
type State int

const (
	// Idle means no transition is in flight.
	Idle State = iota
	// AnimatingOut means the old image is being animated away.
	AnimatingOut
	// AnimatingIn means the new image has been installed and is entering.
	AnimatingIn
)

// Engine drives the Idle → AnimatingOut → install → AnimatingIn → Idle
// sequence for each image switch. The new image is installed only at the end
// of the out phase, so old and new are never visible together.
//
// A switch requested while a transition is in flight cancels the running
// animation, snaps the stage properties back to rest, and starts over
// (cancel-and-restart).
type Engine struct {
	stage    Stage
	animator Animator

	state   State
	running Animation
}

// NewEngine creates an engine driving the given stage.
func NewEngine(stage Stage, animator Animator) *Engine {
	return &Engine{stage: stage, animator: animator}
}

// State returns the engine's current phase.
func (e *Engine) State() State {
	return e.state
}

// Clear cancels any transition in flight and empties the display immediately.
func (e *Engine) Clear() {
	e.cancel()
	e.stage.Install(nil)
}

// Switch replaces the displayed image with img using the given transition
// kind. For None the swap is immediate and synchronous.
func (e *Engine) Switch(kind Kind, img image.Image) {
	e.cancel()

	if kind == None {
		e.stage.Install(img)
		return
	}

	d := kind.PhaseDuration()
	e.state = AnimatingOut
	e.running = e.animator.Animate(d,
		func(p float32) { e.applyOut(kind, p) },
		func() {
			e.stage.Install(img)
			e.state = AnimatingIn
			e.running = e.animator.Animate(d,
				func(p float32) { e.applyIn(kind, p) },
				func() {
					e.rest()
					e.state = Idle
					e.running = nil
				})
		})
}

// cancel stops a running animation, if any, and returns the stage to rest.
func (e *Engine) cancel() {
	if e.running != nil {
		e.running.Stop()
		e.running = nil
	}
	if e.state != Idle {
		e.rest()
		e.state = Idle
	}
}

func (e *Engine) rest() {
	e.stage.SetOffset(0)
	e.stage.SetOpacity(1)
	e.stage.SetScale(1)
}

func (e *Engine) applyOut(kind Kind, p float32) {
	switch kind {
	case Fade:
		e.stage.SetOpacity(1 - p)
	case SlideLeft:
		e.stage.SetOffset(-p)
	case SlideRight:
		e.stage.SetOffset(p)
	case Zoom:
		e.stage.SetScale(1 - (1-zoomRestScale)*p)
	}
}

func (e *Engine) applyIn(kind Kind, p float32) {
	switch kind {
	case Fade:
		e.stage.SetOpacity(p)
	case SlideLeft:
		// The old image left to the west; the new one enters from the east.
		e.stage.SetOffset(1 - p)
	case SlideRight:
		e.stage.SetOffset(-(1 - p))
	case Zoom:
		e.stage.SetScale(zoomRestScale + (1-zoomRestScale)*p)
	}
}
