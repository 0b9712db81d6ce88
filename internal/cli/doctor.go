package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/companion/internal/storage"
)

type DoctorCmd struct{}

// Run checks the profile directory and each snapshot, reporting problems
// without fixing anything. Unreadable snapshots are not fatal at runtime
// (the store falls back to defaults), but they mean saved data would be
// silently discarded on next launch.
func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Printf("Profile: %s\n", ctx.ProfileDir)

	if _, err := os.Stat(ctx.ProfileDir); os.IsNotExist(err) {
		fmt.Println("✗ profile directory does not exist (run 'companion init')")
		return nil
	}
	fmt.Println("✓ profile directory exists")

	checks := []struct {
		name string
		load func() error
	}{
		{"profile", func() error { _, err := ctx.Provider.LoadProfile(); return err }},
		{"mood entries", func() error { _, err := ctx.Provider.LoadMoodEntries(); return err }},
		{"support posts", func() error { _, err := ctx.Provider.LoadSupportPosts(); return err }},
		{"completed activities", func() error { _, err := ctx.Provider.LoadCompletedActivities(); return err }},
		{"user stats", func() error { _, err := ctx.Provider.LoadStats(); return err }},
	}

	healthy := true
	for _, check := range checks {
		err := check.load()
		switch {
		case err == nil:
			fmt.Printf("✓ %s snapshot readable\n", check.name)
		case errors.Is(err, storage.ErrNotFound):
			fmt.Printf("- %s snapshot not written yet (defaults apply)\n", check.name)
		default:
			healthy = false
			fmt.Printf("✗ %s snapshot unreadable: %v\n", check.name, err)
		}
	}

	if !healthy {
		fmt.Println("\nUnreadable snapshots will be replaced with defaults on next write.")
		fmt.Println("Restore a backup with 'companion backup restore' to recover them.")
	}
	return nil
}
