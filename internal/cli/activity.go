package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/timer"
	"github.com/julianstephens/companion/internal/validation"
)

type ActivityCmd struct {
	List  ActivityListCmd  `cmd:"" help:"List the wellness activity catalog."`
	Done  ActivityDoneCmd  `cmd:"" help:"Mark an activity completed."`
	Start ActivityStartCmd `cmd:"" help:"Run an activity with a countdown timer."`
}

type ActivityListCmd struct{}

func (c *ActivityListCmd) Run(ctx *Context) error {
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	for _, a := range content.Activities() {
		mark := "○"
		if ctx.Store.IsActivityCompleted(a.ID) {
			mark = "✓"
		}
		fmt.Printf("%s %-16s %s (%s, %s, %s, +%d pts)\n",
			mark, a.ID, a.Title, a.Duration, a.Category, a.Difficulty, a.Points)
	}

	stats := ctx.Store.Stats()
	fmt.Printf("\n%d/%d completed, %d points\n",
		len(ctx.Store.CompletedActivities()), len(content.Activities()), stats.TotalPoints)
	return nil
}

type ActivityDoneCmd struct {
	ID string `arg:"" help:"Activity ID (see 'companion activity list')."`
}

func (c *ActivityDoneCmd) Run(ctx *Context) error {
	if err := validation.CheckActivityID(c.ID); err != nil {
		return err
	}
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	activity, _ := content.FindActivity(c.ID)
	if !ctx.Store.CompleteActivity(c.ID) {
		fmt.Printf("%q is already completed.\n", activity.Title)
		return nil
	}
	fmt.Printf("Great job completing %q! You earned %d points.\n", activity.Title, activity.Points)
	return nil
}

type ActivityStartCmd struct {
	ID string `arg:"" help:"Activity ID (see 'companion activity list')."`
}

// Run counts the activity down in the terminal and records the
// completion only on natural expiry; interrupting the countdown
// completes nothing.
func (c *ActivityStartCmd) Run(ctx *Context) error {
	if err := validation.CheckActivityID(c.ID); err != nil {
		return err
	}
	if err := ctx.LoadStore(); err != nil {
		return err
	}

	activity, _ := content.FindActivity(c.ID)
	if ctx.Store.IsActivityCompleted(c.ID) {
		fmt.Printf("%q is already completed.\n", activity.Title)
		return nil
	}

	countdown := timer.New(activity.Duration)
	fmt.Printf("%s (%s) - press Ctrl+C to stop\n", activity.Title, activity.Duration)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	if countdown.Start() {
		return c.complete(ctx, activity)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		fmt.Printf("\r%s  %3.f%%", countdown.FormatRemaining(), countdown.Progress()*100)
		select {
		case <-ticker.C:
			if countdown.Tick() {
				fmt.Printf("\r%s  100%%\n", countdown.FormatRemaining())
				return c.complete(ctx, activity)
			}
		case <-interrupt:
			fmt.Println("\nStopped. Activity not completed.")
			return nil
		}
	}
}

func (c *ActivityStartCmd) complete(ctx *Context, activity content.Activity) error {
	ctx.Store.CompleteActivity(activity.ID)
	fmt.Printf("Great job completing %q! You earned %d points.\n", activity.Title, activity.Points)
	return nil
}
