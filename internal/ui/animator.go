package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"fadeshow/internal/transition"
)

// fyneAnimator drives transition phases with the toolkit's animation loop.
// Ticks arrive on the Fyne thread and the final frame is always delivered
// with progress 1, which is what signals phase completion.
type fyneAnimator struct{}

func (fyneAnimator) Animate(d time.Duration, tick func(progress float32), done func()) transition.Animation {
	a := fyne.NewAnimation(d, func(p float32) {
		tick(p)
		if p >= 1 {
			done()
		}
	})
	a.Curve = fyne.AnimationLinear
	a.Start()
	return a
}
