package content

import "github.com/julianstephens/companion/internal/constants"

// Activity is one entry in the wellness activity catalog. The catalog is
// read-only content; completing an activity is recorded by ID only.
type Activity struct {
	ID          string
	Title       string
	Description string
	Duration    string // e.g. "5 min"
	Points      int
	Category    constants.Category
	Difficulty  constants.Difficulty
}

var activities = []Activity{
	{
		ID:          "mindfulness",
		Title:       "5-Minute Mindfulness",
		Description: "Take a moment to breathe and center yourself",
		Duration:    "5 min",
		Points:      10,
		Category:    constants.CategoryMental,
		Difficulty:  constants.DifficultyEasy,
	},
	{
		ID:          "gratitude",
		Title:       "Gratitude Journaling",
		Description: "Write down 3 things you're grateful for today",
		Duration:    "3 min",
		Points:      15,
		Category:    constants.CategoryEmotional,
		Difficulty:  constants.DifficultyEasy,
	},
	{
		ID:          "hydration",
		Title:       "Hydration Check",
		Description: "Drink a glass of water mindfully",
		Duration:    "1 min",
		Points:      5,
		Category:    constants.CategoryPhysical,
		Difficulty:  constants.DifficultyEasy,
	},
	{
		ID:          "music-therapy",
		Title:       "Calming Music Session",
		Description: "Listen to nature sounds or peaceful music",
		Duration:    "10 min",
		Points:      12,
		Category:    constants.CategoryMental,
		Difficulty:  constants.DifficultyEasy,
	},
	{
		ID:          "heart-coherence",
		Title:       "Heart Coherence Breathing",
		Description: "Sync your breathing with your heartbeat",
		Duration:    "7 min",
		Points:      20,
		Category:    constants.CategoryPhysical,
		Difficulty:  constants.DifficultyMedium,
	},
	{
		ID:          "sunlight",
		Title:       "Natural Light Exposure",
		Description: "Step outside or sit by a window for natural light",
		Duration:    "5 min",
		Points:      8,
		Category:    constants.CategoryPhysical,
		Difficulty:  constants.DifficultyEasy,
	},
}

// Activities returns the full activity catalog in display order.
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// FindActivity looks up a catalog activity by ID.
func FindActivity(id string) (Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// ActivityPoints returns the point value for an activity ID. Unknown IDs
// earn the default point value.
func ActivityPoints(id string) int {
	if a, ok := FindActivity(id); ok {
		return a.Points
	}
	return constants.DefaultActivityPoints
}
