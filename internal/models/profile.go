package models

import "time"

// Profile identifies one local user profile. There is no authentication
// and no multi-user synchronization; a profile is just the directory the
// snapshots live in.
type Profile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
