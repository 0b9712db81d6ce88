// Package validation holds the view-boundary input checks. The store
// itself performs no validation: every check here runs before a store
// mutation is invoked, so invalid input never reaches it.
package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
)

// ValidMood reports whether the given string is one of the five
// recognized mood categories.
func ValidMood(mood string) bool {
	switch constants.Mood(mood) {
	case constants.MoodGreat, constants.MoodGood, constants.MoodOkay,
		constants.MoodDown, constants.MoodSad:
		return true
	}
	return false
}

// CheckMood returns an error naming the valid categories when the mood
// is unrecognized.
func CheckMood(mood string) error {
	if !ValidMood(mood) {
		return fmt.Errorf("invalid mood %q (expected great, good, okay, down, or sad)", mood)
	}
	return nil
}

// CheckPostContent rejects empty or whitespace-only post content.
func CheckPostContent(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("post content cannot be empty")
	}
	return nil
}

// CheckActivityID rejects activity IDs that are not in the catalog.
func CheckActivityID(id string) error {
	if _, ok := content.FindActivity(id); !ok {
		return fmt.Errorf("unknown activity %q", id)
	}
	return nil
}
