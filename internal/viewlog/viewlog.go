// Package viewlog persists per-image viewing statistics using a BoltDB
// database: how many times each image has been shown and when it was last on
// screen. The companion CLI reports on this data.
package viewlog

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFileName = "fadeshow_views.db"

	// ViewCountsBucket maps image path to a big-endian uint64 view count.
	ViewCountsBucket = "ViewCounts"
	// LastShownBucket maps image path to an RFC 3339 timestamp.
	LastShownBucket = "LastShown"
)

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// Entry is one image's viewing record.
type Entry struct {
	Path      string
	Count     uint64
	LastShown time.Time
}

// Log manages the view statistics database.
type Log struct {
	db     *bolt.DB
	logger LoggerFunc
}

// Open creates or opens the view database file. dbDir specifies the
// directory for the db file; an empty dbDir falls back to the user config
// directory (or the current directory when that is unavailable).
func Open(dbDir string, logger LoggerFunc) (*Log, error) {
	if dbDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Printf("Warning: Could not get user config dir: %v. Using current dir.", err)
			dbDir = "."
		} else {
			appConfigDir := filepath.Join(configDir, "fadeshow")
			if err := os.MkdirAll(appConfigDir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create config directory %s: %w", appConfigDir, err)
			}
			dbDir = appConfigDir
		}
	}

	dbPath := filepath.Join(dbDir, dbFileName)
	if logger != nil {
		logger(fmt.Sprintf("Using view database at: %s", dbPath))
	}

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open view database %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{ViewCountsBucket, LastShownBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Log{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (l *Log) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record increments the view count for path and stamps the current time.
func (l *Log) Record(path string) error {
	if path == "" {
		return fmt.Errorf("image path required")
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		counts := tx.Bucket([]byte(ViewCountsBucket))
		n := decodeCount(counts.Get([]byte(path)))
		if err := counts.Put([]byte(path), encodeCount(n+1)); err != nil {
			return fmt.Errorf("failed to store view count for %s: %w", path, err)
		}

		last := tx.Bucket([]byte(LastShownBucket))
		stamp := time.Now().UTC().Format(time.RFC3339)
		if err := last.Put([]byte(path), []byte(stamp)); err != nil {
			return fmt.Errorf("failed to store last-shown time for %s: %w", path, err)
		}
		return nil
	})
}

// Count returns the view count for path; 0 when never recorded.
func (l *Log) Count(path string) (uint64, error) {
	var n uint64
	err := l.db.View(func(tx *bolt.Tx) error {
		n = decodeCount(tx.Bucket([]byte(ViewCountsBucket)).Get([]byte(path)))
		return nil
	})
	return n, err
}

// Entries returns every record, sorted by view count descending, ties broken
// by path.
func (l *Log) Entries() ([]Entry, error) {
	var entries []Entry
	err := l.db.View(func(tx *bolt.Tx) error {
		counts := tx.Bucket([]byte(ViewCountsBucket))
		last := tx.Bucket([]byte(LastShownBucket))
		return counts.ForEach(func(k, v []byte) error {
			e := Entry{Path: string(k), Count: decodeCount(v)}
			if stamp := last.Get(k); stamp != nil {
				if t, err := time.Parse(time.RFC3339, string(stamp)); err == nil {
					e.LastShown = t
				}
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// Top returns the n most-viewed entries.
func (l *Log) Top(n int) ([]Entry, error) {
	entries, err := l.Entries()
	if err != nil {
		return nil, err
	}
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries, nil
}

// Forget removes the record for path.
func (l *Log) Forget(path string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(ViewCountsBucket)).Delete([]byte(path)); err != nil {
			return err
		}
		return tx.Bucket([]byte(LastShownBucket)).Delete([]byte(path))
	})
}

// Clear drops all records.
func (l *Log) Clear() error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{ViewCountsBucket, LastShownBucket} {
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return fmt.Errorf("failed to drop bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket([]byte(name)); err != nil {
				return fmt.Errorf("failed to recreate bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err == nil && l.logger != nil {
		l.logger("View log cleared.")
	}
	return err
}

func encodeCount(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

func decodeCount(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
