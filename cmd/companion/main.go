package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/companion/internal/app"
	"github.com/julianstephens/companion/internal/cli"
	"github.com/julianstephens/companion/internal/constants"
	apperrors "github.com/julianstephens/companion/internal/errors"
	"github.com/julianstephens/companion/internal/logger"
	"github.com/julianstephens/companion/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Profile string `help:"Profile directory." type:"string" default:"~/.config/companion"`
	Storage string `help:"Storage backend: json or sqlite." enum:"json,sqlite" default:"json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize a companion profile."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Mood     cli.MoodCmd     `cmd:"" help:"Log and review mood check-ins."`
	Post     cli.PostCmd     `cmd:"" help:"Share and browse anonymous support posts."`
	Activity cli.ActivityCmd `cmd:"" help:"Browse and complete wellness activities."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show wellness statistics and achievements."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks on the profile."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage profile backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mental wellness companion: mood check-ins, guided activities, and an anonymous support wall"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	profileDir, err := expandPath(CLI.Profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ProfileDir: profileDir}); err != nil {
		// Logging is best-effort; the app keeps working without it.
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var provider storage.Provider
	if CLI.Storage == "sqlite" {
		provider = storage.NewSQLiteStore(filepath.Join(profileDir, "companion.db"))
	} else {
		provider = storage.NewJSONStore(profileDir)
	}
	defer provider.Close()

	appCtx := &cli.Context{
		Provider:   provider,
		Store:      app.NewStore(provider),
		ProfileDir: profileDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		provider.Close()
		apperrors.Fatal(err)
	}
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
