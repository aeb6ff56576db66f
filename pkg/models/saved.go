package models

import "time"

// MaxSavedNameLength is the longest name accepted for a saved builder.
const MaxSavedNameLength = 40

// SavedJSON is a named, timestamped snapshot of a builder document.
// Date (epoch milliseconds) is the unique key of the snapshot.
type SavedJSON struct {
	Name string   `json:"name"`
	Date int64    `json:"date"`
	Data Document `json:"data"`
}

// SavedAt returns the snapshot date as a time.Time.
func (s SavedJSON) SavedAt() time.Time {
	return time.UnixMilli(s.Date)
}
