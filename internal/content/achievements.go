package content

import "github.com/julianstephens/companion/internal/models"

// Progress is the read-only view of a profile that achievement
// predicates are evaluated against.
type Progress struct {
	Stats               models.UserStats
	MoodEntries         int
	LikedPosts          int
	CompletedActivities int
}

// Achievement is one entry in the achievement catalog.
type Achievement struct {
	Title       string
	Description string
	Icon        string
	Earned      func(Progress) bool
}

var achievements = []Achievement{
	{
		Title:       "Mindful Week",
		Description: "Completed 7 days of mindfulness",
		Icon:        "🧘",
		Earned:      func(p Progress) bool { return p.Stats.Streak >= 7 },
	},
	{
		Title:       "Mood Tracker",
		Description: "Logged mood for 5 consecutive days",
		Icon:        "📊",
		Earned:      func(p Progress) bool { return p.MoodEntries >= 5 },
	},
	{
		Title:       "Support Star",
		Description: "Gave encouragement to 3 community members",
		Icon:        "⭐",
		Earned:      func(p Progress) bool { return p.LikedPosts >= 3 },
	},
	{
		Title:       "Wellness Warrior",
		Description: "Completed 25 wellness activities",
		Icon:        "🏆",
		Earned:      func(p Progress) bool { return p.Stats.CompletedTasks >= 25 },
	},
}

// Achievements returns the achievement catalog in display order.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}
