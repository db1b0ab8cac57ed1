package domain

import (
	"sort"
	"time"
)

// Target is a local path queued for scanning.
type Target struct {
	// Path is the local filesystem path. It is the target's identity.
	Path string

	// Recursive indicates directories are scanned with their subdirectories.
	Recursive bool

	// AddedAt is when the target was first added.
	AddedAt time.Time
}

// SortTargets orders targets by path in place.
func SortTargets(targets []Target) {
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Path < targets[j].Path
	})
}
