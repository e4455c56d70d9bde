package transition

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStage captures every property change and install in order.
type recordingStage struct {
	offset  float32
	opacity float32
	scale   float32
	current image.Image

	installs []image.Image
	events   []string
}

func newRecordingStage() *recordingStage {
	return &recordingStage{opacity: 1, scale: 1}
}

func (s *recordingStage) SetOffset(f float32)  { s.offset = f; s.events = append(s.events, "offset") }
func (s *recordingStage) SetOpacity(o float32) { s.opacity = o; s.events = append(s.events, "opacity") }
func (s *recordingStage) SetScale(sc float32)  { s.scale = sc; s.events = append(s.events, "scale") }
func (s *recordingStage) Install(img image.Image) {
	s.current = img
	s.installs = append(s.installs, img)
	s.events = append(s.events, "install")
}

// manualAnimation is an Animation the test finishes by hand.
type manualAnimation struct {
	duration time.Duration
	tick     func(float32)
	done     func()
	stopped  bool
}

func (a *manualAnimation) Stop() { a.stopped = true }

// manualAnimator hands out animations the test steps explicitly.
type manualAnimator struct {
	started []*manualAnimation
}

func (m *manualAnimator) Animate(d time.Duration, tick func(float32), done func()) Animation {
	a := &manualAnimation{duration: d, tick: tick, done: done}
	m.started = append(m.started, a)
	return a
}

// last returns the most recently started animation.
func (m *manualAnimator) last() *manualAnimation {
	return m.started[len(m.started)-1]
}

// finish runs an animation to its end: final tick then completion.
func (m *manualAnimator) finish(a *manualAnimation) {
	a.tick(1)
	a.done()
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

func TestSwitchNoneInstallsImmediately(t *testing.T) {
	stage := newRecordingStage()
	anim := &manualAnimator{}
	e := NewEngine(stage, anim)

	img := testImage()
	e.Switch(None, img)

	assert.Equal(t, Idle, e.State())
	assert.Empty(t, anim.started, "None must not start any animation")
	require.Len(t, stage.installs, 1)
	assert.Same(t, img, stage.installs[0])
}

func TestSwitchInstallsOnlyAfterOutPhase(t *testing.T) {
	stage := newRecordingStage()
	anim := &manualAnimator{}
	e := NewEngine(stage, anim)

	img := testImage()
	e.Switch(Fade, img)

	require.Len(t, anim.started, 1)
	assert.Equal(t, AnimatingOut, e.State())
	assert.Empty(t, stage.installs, "install must wait for the out phase")

	out := anim.last()
	out.tick(0.5)
	assert.InDelta(t, 0.5, stage.opacity, 0.001)
	assert.Empty(t, stage.installs, "install must wait for out completion")

	anim.finish(out)
	require.Len(t, stage.installs, 1, "install happens at out completion")
	assert.Equal(t, AnimatingIn, e.State())

	require.Len(t, anim.started, 2)
	in := anim.last()
	in.tick(0.25)
	assert.InDelta(t, 0.25, stage.opacity, 0.001)

	anim.finish(in)
	assert.Equal(t, Idle, e.State())
	assert.InDelta(t, 1.0, stage.opacity, 0.001, "stage returns to rest")
}

func TestSlideDirections(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		stage := newRecordingStage()
		anim := &manualAnimator{}
		e := NewEngine(stage, anim)

		e.Switch(SlideLeft, testImage())
		out := anim.last()
		anim.finish(out)
		// New image enters from the right edge.
		in := anim.last()
		in.tick(0)
		assert.InDelta(t, 1.0, stage.offset, 0.001)
		in.tick(1)
		assert.InDelta(t, 0.0, stage.offset, 0.001)
	})

	t.Run("right", func(t *testing.T) {
		stage := newRecordingStage()
		anim := &manualAnimator{}
		e := NewEngine(stage, anim)

		e.Switch(SlideRight, testImage())
		out := anim.last()
		out.tick(1)
		assert.InDelta(t, 1.0, stage.offset, 0.001, "old image exits to the right")
		anim.finish(out)
		in := anim.last()
		in.tick(0)
		assert.InDelta(t, -1.0, stage.offset, 0.001, "new image enters from the left")
	})
}

func TestZoomScaleRange(t *testing.T) {
	stage := newRecordingStage()
	anim := &manualAnimator{}
	e := NewEngine(stage, anim)

	e.Switch(Zoom, testImage())
	out := anim.last()
	out.tick(1)
	assert.InDelta(t, 0.7, stage.scale, 0.001)
	anim.finish(out)

	in := anim.last()
	in.tick(0)
	assert.InDelta(t, 0.7, stage.scale, 0.001)
	anim.finish(in)
	assert.InDelta(t, 1.0, stage.scale, 0.001)
}

func TestSwitchDuringTransitionCancelsAndRestarts(t *testing.T) {
	stage := newRecordingStage()
	anim := &manualAnimator{}
	e := NewEngine(stage, anim)

	first := testImage()
	second := testImage()

	e.Switch(Fade, first)
	out := anim.last()
	out.tick(0.5)

	e.Switch(Fade, second)
	assert.True(t, out.stopped, "in-flight animation is stopped")
	assert.Equal(t, AnimatingOut, e.State())
	assert.Empty(t, stage.installs, "first image is never installed")

	anim.finish(anim.last())
	require.Len(t, stage.installs, 1)
	assert.Same(t, second, stage.installs[0])
}

func TestClearCancelsAndEmptiesDisplay(t *testing.T) {
	stage := newRecordingStage()
	anim := &manualAnimator{}
	e := NewEngine(stage, anim)

	e.Switch(Zoom, testImage())
	e.Clear()

	assert.Equal(t, Idle, e.State())
	require.NotEmpty(t, stage.installs)
	assert.Nil(t, stage.installs[len(stage.installs)-1])
	assert.InDelta(t, 1.0, stage.scale, 0.001, "properties reset to rest")
}

func TestPhaseDurations(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, Fade.PhaseDuration())
	assert.Equal(t, 250*time.Millisecond, SlideLeft.PhaseDuration())
	assert.Equal(t, 250*time.Millisecond, SlideRight.PhaseDuration())
	assert.Equal(t, 200*time.Millisecond, Zoom.PhaseDuration())
	assert.Equal(t, time.Duration(0), None.PhaseDuration())
}

func TestParseRoundTrip(t *testing.T) {
	for _, name := range Names() {
		k, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := Parse("Dissolve")
	assert.Error(t, err)
}
