// Package history tracks the most recently shown images.
package history

// RecentList keeps the last shown image paths, newest first, without
// duplicates. It feeds the thumbnail strip under the display.
type RecentList struct {
	paths    []string
	capacity int
}

// NewRecentList creates a RecentList. A capacity of 0 disables tracking;
// negative capacity is treated as 0.
func NewRecentList(capacity int) *RecentList {
	if capacity < 0 {
		capacity = 0
	}
	return &RecentList{
		paths:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Record notes that path was just shown. If the path is already present it
// moves to the front; the oldest entry is dropped past capacity.
func (r *RecentList) Record(path string) {
	if r.capacity == 0 || path == "" {
		return
	}

	filtered := r.paths[:0]
	for _, p := range r.paths {
		if p != path {
			filtered = append(filtered, p)
		}
	}
	r.paths = append([]string{path}, filtered...)

	if len(r.paths) > r.capacity {
		r.paths = r.paths[:r.capacity]
	}
}

// Remove drops all occurrences of path.
func (r *RecentList) Remove(path string) {
	filtered := r.paths[:0]
	for _, p := range r.paths {
		if p != path {
			filtered = append(filtered, p)
		}
	}
	r.paths = filtered
}

// Paths returns the recorded paths, newest first.
func (r *RecentList) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Len returns the number of recorded paths.
func (r *RecentList) Len() int {
	return len(r.paths)
}

// Clear resets the list.
func (r *RecentList) Clear() {
	r.paths = r.paths[:0]
}
