package storage

import (
	"errors"

	"github.com/julianstephens/companion/internal/models"
)

// ErrNotFound is returned when a snapshot has never been written. The
// app store treats it as an instruction to fall back to defaults.
var ErrNotFound = errors.New("snapshot not found")

// Provider persists the four profile collections as independent
// snapshots. Each Save replaces one snapshot wholesale; a crash between
// two Saves can leave them mutually inconsistent, which the system does
// not guard against.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Profile
	LoadProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Mood entries, newest first
	LoadMoodEntries() ([]models.MoodEntry, error)
	SaveMoodEntries([]models.MoodEntry) error

	// Support posts, newest first
	LoadSupportPosts() ([]models.SupportPost, error)
	SaveSupportPosts([]models.SupportPost) error

	// Completed activity IDs, treated as a set
	LoadCompletedActivities() ([]string, error)
	SaveCompletedActivities([]string) error

	// User statistics
	LoadStats() (models.UserStats, error)
	SaveStats(models.UserStats) error

	// Utils
	GetConfigPath() string
}
