package models

import "github.com/julianstephens/companion/internal/constants"

// MoodEntry is a single mood check-in. Entries are immutable once
// created; they are never updated or deleted.
type MoodEntry struct {
	ID        string         `json:"id"`
	Mood      constants.Mood `json:"mood"`
	Note      string         `json:"note,omitempty"`
	Timestamp string         `json:"timestamp"` // display-formatted wall-clock time
	Date      string         `json:"date"`      // YYYY-MM-DD, derived from the timestamp
}
