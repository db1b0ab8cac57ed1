package domain

import "time"

// Drop records one batch of URLs handed to droppath, typically by a
// drag-and-drop gesture, and the local paths they resolved to.
type Drop struct {
	// ID is the unique identifier for the drop.
	ID string

	// URLs are the raw URL strings in the order they were dropped.
	URLs []string

	// Paths holds one local path per URL. Empty when Local is false.
	Paths []string

	// Local is true when every URL starts with "file:///".
	Local bool

	// Platform is the platform the paths were converted for.
	Platform Platform

	// Added is the number of new targets the drop produced.
	Added int

	// CreatedAt is when the drop was received.
	CreatedAt time.Time
}

// DropItem is one dropped entry. Path is set when the entry was given as
// a local path and needs no URL conversion; URL then holds its file URL.
type DropItem struct {
	URL  string
	Path string
}

// URLItems wraps urls as drop items that still need conversion.
func URLItems(urls []string) []DropItem {
	items := make([]DropItem, len(urls))
	for i, u := range urls {
		items[i] = DropItem{URL: u}
	}
	return items
}
