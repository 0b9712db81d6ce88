package models

// SupportPost is one anonymous community message. IDs are unique and
// monotonically increasing; timestamps are rendered relative strings and
// may collide, so the ID is the only uniqueness key.
type SupportPost struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"` // "Just now" or a seeded relative-time string
	Likes       int    `json:"likes"`
	Replies     int    `json:"replies"` // display only, never incremented in scope
	Anonymous   bool   `json:"anonymous"`
	Supportive  bool   `json:"supportive"`
	LikedByUser bool   `json:"likedByUser,omitempty"`
}
