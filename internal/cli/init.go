package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/companion/internal/models"
	"github.com/julianstephens/companion/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Reset the profile by deleting existing snapshots before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if _, err := os.Stat(ctx.ProfileDir); err == nil {
			if err := ctx.Provider.Close(); err != nil {
				return fmt.Errorf("failed to close existing profile: %w", err)
			}
			if err := os.RemoveAll(ctx.ProfileDir); err != nil {
				return fmt.Errorf("failed to delete existing profile: %w", err)
			}
			fmt.Printf("Deleted existing profile at: %s\n", ctx.ProfileDir)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing profile: %w", err)
		}
	}

	if err := ctx.Provider.Init(); err != nil {
		return err
	}

	if _, err := ctx.Provider.LoadProfile(); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		profile := models.Profile{
			ID:        uuid.New().String(),
			CreatedAt: time.Now(),
		}
		if err := ctx.Provider.SaveProfile(profile); err != nil {
			return err
		}
	}

	// Seed every snapshot with its defaults so a fresh profile is complete
	// on disk, not only in memory.
	ctx.Store.Load()
	if err := ctx.Store.SaveAll(); err != nil {
		return err
	}

	fmt.Printf("Initialized companion profile at: %s\n", ctx.Provider.GetConfigPath())
	return nil
}
