// Package scan enumerates the eligible image files of a folder.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoggerFunc defines a function signature for logging messages.
// This allows the ui package to provide its logging mechanism.
type LoggerFunc func(message string)

// FileItem represents a single eligible image file.
type FileItem struct {
	Path string
}

// FileItems is a slice of FileItem
type FileItems []FileItem

// Paths returns just the file paths of the items, in list order.
func (m FileItems) Paths() []string {
	paths := make([]string, len(m))
	for i, item := range m {
		paths[i] = item.Path
	}
	return paths
}

// IsImage checks if a file name carries a supported image extension.
// The check is case-insensitive.
func IsImage(n string) bool {
	switch strings.ToLower(filepath.Ext(n)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".gif":
		return true
	default:
		return false
	}
}

// List enumerates the immediate entries of dir (non-recursive) and returns
// the eligible image files as absolute paths. A missing or unreadable folder
// yields an empty list rather than an error; enumeration order is whatever
// the OS returns.
func List(dir string, logger LoggerFunc) FileItems {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if logger != nil {
			logger(fmt.Sprintf("Cannot read folder %s: %v", dir, err))
		}
		return nil
	}

	var items FileItems
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		items = append(items, FileItem{Path: p})
	}
	return items
}
