package cli

import (
	"github.com/julianstephens/companion/internal/app"
	"github.com/julianstephens/companion/internal/backup"
	"github.com/julianstephens/companion/internal/logger"
	"github.com/julianstephens/companion/internal/storage"
)

// Context carries the shared dependencies into every command. The app
// store is constructed once at startup and handed down explicitly.
type Context struct {
	Provider   storage.Provider
	Store      *app.Store
	ProfileDir string
}

// LoadStore initializes the backend and loads every snapshot into the
// app store. Missing or unreadable snapshots fall back to defaults, so
// this only fails when the profile directory itself cannot be created.
func (c *Context) LoadStore() error {
	if err := c.Provider.Init(); err != nil {
		return err
	}
	c.Store.Load()
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.ProfileDir)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
