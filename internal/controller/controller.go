// Package controller owns the slideshow state: the configured folder, the
// eligible image list, and the selected transition. All methods must be
// called from the UI thread; event handlers forward here rather than
// touching state directly.
package controller

import (
	"fmt"
	"image"
	"math/rand"
	"path/filepath"

	"fadeshow/internal/scan"
	"fadeshow/internal/transition"
)

// maxDecodeAttempts caps how many random picks are retried when files fail
// to decode before the display is cleared.
const maxDecodeAttempts = 5

// Display receives the outcome of a rotation: a new image to show with a
// transition, or a cleared display when nothing is available.
type Display interface {
	Show(kind transition.Kind, img image.Image)
	Clear()
}

// Loader decodes an image file into a bitmap. Implementations must not hold
// the file handle open after the decode completes.
type Loader interface {
	Load(path string) (image.Image, error)
}

// Controller is the slideshow controller.
type Controller struct {
	folder string
	items  scan.FileItems
	kind   transition.Kind

	display Display
	loader  Loader
	logger  scan.LoggerFunc

	// intn is swappable for tests; defaults to the process-wide generator.
	intn func(n int) int

	onShown     func(path string)
	currentPath string
}

// New creates a controller. The transition kind defaults to Fade.
func New(display Display, loader Loader, logger scan.LoggerFunc) *Controller {
	return &Controller{
		display: display,
		loader:  loader,
		logger:  logger,
		kind:    transition.Fade,
		intn:    rand.Intn,
	}
}

// SetOnShown registers a callback invoked after each successful install with
// the shown file's path. Used for the view log and the recent strip.
func (c *Controller) SetOnShown(fn func(path string)) {
	c.onShown = fn
}

// Initialize sets the starting folder, loads its image list, and shows an
// initial image without a transition. A missing or empty folder is not an
// error; the display simply stays clear.
func (c *Controller) Initialize(defaultFolder string) {
	c.folder = defaultFolder
	c.items = scan.List(defaultFolder, c.logger)
	c.logf("Loaded %d images from %s", len(c.items), defaultFolder)
	c.showRandom(transition.None)
}

// SetFolder replaces the folder, reloads the image list synchronously, and
// immediately shows a new random image. A non-existent or unreadable path
// degrades to an empty list.
func (c *Controller) SetFolder(path string) {
	c.folder = path
	c.items = scan.List(path, c.logger)
	c.logf("Loaded %d images from %s", len(c.items), path)
	c.showRandom(c.kind)
}

// ShowRandomImage picks a uniformly random image from the current list and
// hands it to the transition pipeline. An empty list clears the display.
func (c *Controller) ShowRandomImage() {
	c.showRandom(c.kind)
}

// AdvanceManually is the user-facing "next" trigger. It behaves exactly like
// a timer rotation.
func (c *Controller) AdvanceManually() {
	c.ShowRandomImage()
}

// ShowPath displays a specific file from the current list, e.g. when a
// thumbnail in the recent strip is tapped. A decode failure leaves the
// current image in place.
func (c *Controller) ShowPath(path string) {
	img, err := c.loader.Load(path)
	if err != nil {
		c.logf("Cannot load %s: %v", filepath.Base(path), err)
		return
	}
	c.install(c.kind, path, img)
}

// SetTransitionKind selects the transition for subsequent switches. An
// animation already in progress is unaffected.
func (c *Controller) SetTransitionKind(kind transition.Kind) {
	c.kind = kind
}

// TransitionKind returns the currently selected transition.
func (c *Controller) TransitionKind() transition.Kind {
	return c.kind
}

// Folder returns the configured folder path.
func (c *Controller) Folder() string {
	return c.folder
}

// Count returns the number of eligible images in the current list.
func (c *Controller) Count() int {
	return len(c.items)
}

// CurrentPath returns the path of the displayed image, or "" when the
// display is clear.
func (c *Controller) CurrentPath() string {
	return c.currentPath
}

func (c *Controller) showRandom(kind transition.Kind) {
	if len(c.items) == 0 {
		c.currentPath = ""
		c.display.Clear()
		c.logf("No images available.")
		return
	}

	for attempt := 0; attempt < maxDecodeAttempts; attempt++ {
		path := c.items[c.intn(len(c.items))].Path
		img, err := c.loader.Load(path)
		if err != nil {
			c.logf("Cannot decode %s: %v", filepath.Base(path), err)
			continue
		}
		c.install(kind, path, img)
		return
	}

	c.logf("Giving up after %d failed picks.", maxDecodeAttempts)
	c.currentPath = ""
	c.display.Clear()
}

func (c *Controller) install(kind transition.Kind, path string, img image.Image) {
	c.currentPath = path
	c.display.Show(kind, img)
	if c.onShown != nil {
		c.onShown(path)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger(fmt.Sprintf(format, args...))
	}
}
