package cli

import (
	"fmt"

	"github.com/julianstephens/companion/internal/content"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	stats := ctx.Store.Stats()
	fmt.Printf("Wellness score: %d%%\n", stats.WellnessScore)
	fmt.Printf("Streak:         %d days\n", stats.Streak)
	fmt.Printf("Tasks:          %d/%d\n", stats.CompletedTasks, stats.TotalTasks)
	fmt.Printf("Points:         %d\n", stats.TotalPoints)

	progress := ctx.Store.Progress()
	fmt.Println("\nAchievements:")
	for _, a := range content.Achievements() {
		mark := "○"
		if a.Earned(progress) {
			mark = "✓"
		}
		fmt.Printf("%s %s %s - %s\n", mark, a.Icon, a.Title, a.Description)
	}
	return nil
}
