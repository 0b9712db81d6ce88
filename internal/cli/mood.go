package cli

import (
	"fmt"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/validation"
)

type MoodCmd struct {
	Log  MoodLogCmd  `cmd:"" help:"Log a mood check-in."`
	List MoodListCmd `cmd:"" help:"Show recent mood check-ins."`
}

type MoodLogCmd struct {
	Mood string `arg:"" help:"Mood category: great, good, okay, down, or sad."`
	Note string `help:"Optional note about what's on your mind." default:""`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	if err := validation.CheckMood(c.Mood); err != nil {
		return err
	}
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	entry := ctx.Store.LogMood(constants.Mood(c.Mood), c.Note)

	choice, _ := content.FindMood(entry.Mood)
	fmt.Printf("Logged %s %s mood at %s\n", choice.Emoji, choice.Label, entry.Timestamp)
	fmt.Printf("\nReflection: %s\n", content.Reflection(entry.Mood))
	return nil
}

type MoodListCmd struct {
	Limit int `help:"Maximum number of entries to show." default:"10"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	entries := ctx.Store.MoodEntries()
	if len(entries) == 0 {
		fmt.Println("No mood check-ins yet.")
		return nil
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	for _, entry := range entries {
		choice, _ := content.FindMood(entry.Mood)
		line := fmt.Sprintf("%s %s  %s", choice.Emoji, choice.Label, entry.Timestamp)
		if entry.Note != "" {
			line += fmt.Sprintf(" - %s", entry.Note)
		}
		fmt.Println(line)
	}
	return nil
}
