package controller

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"fadeshow/internal/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisplay records Show and Clear calls.
type fakeDisplay struct {
	shown   []transition.Kind
	cleared int
}

func (d *fakeDisplay) Show(kind transition.Kind, img image.Image) {
	d.shown = append(d.shown, kind)
}

func (d *fakeDisplay) Clear() {
	d.cleared++
}

// fakeLoader resolves paths against a set of decodable files.
type fakeLoader struct {
	failing map[string]bool
	loaded  []string
}

func (l *fakeLoader) Load(path string) (image.Image, error) {
	l.loaded = append(l.loaded, path)
	if l.failing[path] {
		return nil, errors.New("bad file")
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func newTestController(t *testing.T) (*Controller, *fakeDisplay, *fakeLoader) {
	t.Helper()
	display := &fakeDisplay{}
	loader := &fakeLoader{failing: map[string]bool{}}
	c := New(display, loader, func(msg string) { t.Log(msg) })
	return c, display, loader
}

func TestInitializeEmptyFolderClearsDisplay(t *testing.T) {
	c, display, _ := newTestController(t)

	c.Initialize(t.TempDir())

	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 1, display.cleared)
	assert.Empty(t, display.shown)
	assert.Empty(t, c.CurrentPath())
}

func TestInitializeMissingFolderClearsDisplay(t *testing.T) {
	c, display, _ := newTestController(t)

	c.Initialize(filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 1, display.cleared)
}

func TestInitializeShowsFirstImageWithoutTransition(t *testing.T) {
	c, display, _ := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	c.SetTransitionKind(transition.Zoom)
	c.Initialize(dir)

	require.Len(t, display.shown, 1)
	assert.Equal(t, transition.None, display.shown[0], "first show needs no transition")
}

func TestShowRandomImageSingleFile(t *testing.T) {
	c, display, loader := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	c.Initialize(dir)
	for i := 0; i < 10; i++ {
		c.ShowRandomImage()
	}

	assert.Len(t, display.shown, 11)
	assert.Equal(t, "a.png", filepath.Base(c.CurrentPath()))
	for _, p := range loader.loaded {
		assert.Equal(t, "a.png", filepath.Base(p))
	}
}

func TestShowRandomImageSelectsOnlyFromCurrentList(t *testing.T) {
	c, _, loader := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.png", "c.bmp", "d.txt")

	c.Initialize(dir)
	assert.Equal(t, 3, c.Count(), "d.txt is not eligible")

	for i := 0; i < 50; i++ {
		c.ShowRandomImage()
	}
	for _, p := range loader.loaded {
		assert.Contains(t, []string{"a.jpg", "b.png", "c.bmp"}, filepath.Base(p))
	}
}

func TestSetFolderSwitchesListWithoutLeakage(t *testing.T) {
	c, display, loader := newTestController(t)
	first := t.TempDir()
	second := t.TempDir()
	writeFiles(t, first, "old1.png", "old2.png")
	writeFiles(t, second, "new.png")

	c.Initialize(first)
	loader.loaded = nil

	c.SetFolder(second)
	require.Len(t, display.shown, 2, "SetFolder shows a new image immediately")
	assert.Equal(t, 1, c.Count())

	for i := 0; i < 20; i++ {
		c.ShowRandomImage()
	}
	for _, p := range loader.loaded {
		assert.Equal(t, "new.png", filepath.Base(p), "no stale-list leakage")
	}
}

func TestSetFolderMissingPathDegradesGracefully(t *testing.T) {
	c, display, _ := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	c.Initialize(dir)
	c.SetFolder(filepath.Join(dir, "nope"))

	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 1, display.cleared)
	assert.Empty(t, c.CurrentPath())
}

func TestDecodeFailureRetriesThenClears(t *testing.T) {
	c, display, loader := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "corrupt.png")
	loader.failing[mustAbs(t, filepath.Join(dir, "corrupt.png"))] = true

	c.Initialize(dir)

	assert.Len(t, loader.loaded, maxDecodeAttempts, "retries are capped")
	assert.Equal(t, 1, display.cleared)
	assert.Empty(t, display.shown)
	assert.Empty(t, c.CurrentPath())
}

func TestDecodeFailureSkipsToAnotherPick(t *testing.T) {
	c, display, loader := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "bad.png", "good.png")

	c.Initialize(dir)
	loader.failing[mustAbs(t, filepath.Join(dir, "bad.png"))] = true

	// Deterministic picks: first the bad file, then the good one.
	badIdx, goodIdx := 0, 1
	for i, path := range scanItems(c) {
		if filepath.Base(path) == "bad.png" {
			badIdx = i
		} else {
			goodIdx = i
		}
	}
	picks := []int{badIdx, goodIdx}
	c.intn = func(n int) int {
		idx := picks[0]
		if len(picks) > 1 {
			picks = picks[1:]
		}
		return idx
	}

	c.ShowRandomImage()

	assert.Equal(t, "good.png", filepath.Base(c.CurrentPath()))
	assert.NotEmpty(t, display.shown)
}

func TestSetTransitionKindAppliesToSubsequentSwitches(t *testing.T) {
	c, display, _ := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	c.Initialize(dir)
	c.SetTransitionKind(transition.SlideLeft)
	c.ShowRandomImage()

	require.Len(t, display.shown, 2)
	assert.Equal(t, transition.SlideLeft, display.shown[1])
	assert.Equal(t, transition.SlideLeft, c.TransitionKind())
}

func TestShowPathDecodeFailureKeepsCurrentImage(t *testing.T) {
	c, display, loader := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	c.Initialize(dir)
	shownBefore := len(display.shown)
	current := c.CurrentPath()

	bad := filepath.Join(dir, "gone.png")
	loader.failing[bad] = true
	c.ShowPath(bad)

	assert.Len(t, display.shown, shownBefore)
	assert.Equal(t, current, c.CurrentPath())
}

func TestOnShownCallbackReceivesPath(t *testing.T) {
	c, _, _ := newTestController(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.png")

	var shown []string
	c.SetOnShown(func(path string) { shown = append(shown, path) })

	c.Initialize(dir)
	c.AdvanceManually()

	require.Len(t, shown, 2)
	assert.Equal(t, "a.png", filepath.Base(shown[0]))
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}

// scanItems exposes the controller's current list paths for test setup.
func scanItems(c *Controller) []string {
	return c.items.Paths()
}
