// Package transition sequences the visual swap between the displayed image
// and its replacement.
package transition

import (
	"fmt"
	"time"
)

// Kind identifies one of the supported transition animations.
type Kind int

const (
	// None swaps the image immediately with no animation.
	None Kind = iota
	// Fade dims the old image to transparent, then brightens the new one.
	Fade
	// SlideLeft pushes the old image off the left edge; the new one enters
	// from the right.
	SlideLeft
	// SlideRight pushes the old image off the right edge; the new one enters
	// from the left.
	SlideRight
	// Zoom shrinks the old image toward the centre, then grows the new one.
	Zoom
)

const (
	fadeDuration  = 300 * time.Millisecond
	slideDuration = 250 * time.Millisecond
	zoomDuration  = 200 * time.Millisecond

	// zoomRestScale is the scale the zoom transition shrinks to before the
	// swap, and grows back from after it.
	zoomRestScale = 0.7
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Fade:
		return "Fade"
	case SlideLeft:
		return "Slide Left"
	case SlideRight:
		return "Slide Right"
	case Zoom:
		return "Zoom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// PhaseDuration returns the duration of one phase (out or in) of the
// transition. None has no animated phases and returns zero.
func (k Kind) PhaseDuration() time.Duration {
	switch k {
	case Fade:
		return fadeDuration
	case SlideLeft, SlideRight:
		return slideDuration
	case Zoom:
		return zoomDuration
	default:
		return 0
	}
}

// Names returns the display names of all kinds, in selector order.
func Names() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

var kinds = []Kind{None, Fade, SlideLeft, SlideRight, Zoom}

// Parse maps a display name back to its Kind.
func Parse(name string) (Kind, error) {
	for _, k := range kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown transition %q", name)
}
