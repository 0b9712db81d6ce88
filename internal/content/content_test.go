package content

import (
	"testing"

	"github.com/julianstephens/companion/internal/constants"
)

func TestActivityPoints(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"mindfulness", 10},
		{"gratitude", 15},
		{"hydration", 5},
		{"music-therapy", 12},
		{"heart-coherence", 20},
		{"sunlight", 8},
		{"unknown-activity", constants.DefaultActivityPoints},
		{"", constants.DefaultActivityPoints},
	}

	for _, tt := range tests {
		if got := ActivityPoints(tt.id); got != tt.want {
			t.Errorf("ActivityPoints(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestFindActivity(t *testing.T) {
	a, ok := FindActivity("heart-coherence")
	if !ok {
		t.Fatal("heart-coherence not found in catalog")
	}
	if a.Duration != "7 min" {
		t.Errorf("heart-coherence duration = %q, want %q", a.Duration, "7 min")
	}

	if _, ok := FindActivity("jogging"); ok {
		t.Error("unexpected catalog hit for jogging")
	}
}

func TestMoodScale(t *testing.T) {
	tests := []struct {
		mood constants.Mood
		want int
	}{
		{constants.MoodGreat, 9},
		{constants.MoodGood, 7},
		{constants.MoodOkay, 5},
		{constants.MoodDown, 3},
		{constants.MoodSad, 1},
		{constants.Mood("unmapped"), 5},
	}

	for _, tt := range tests {
		if got := MoodScale(tt.mood); got != tt.want {
			t.Errorf("MoodScale(%q) = %d, want %d", tt.mood, got, tt.want)
		}
	}
}

func TestReflectionCoversEveryMood(t *testing.T) {
	for _, choice := range Moods() {
		if Reflection(choice.Value) == "" {
			t.Errorf("no reflection for mood %q", choice.Value)
		}
	}
	if Reflection(constants.Mood("unmapped")) == "" {
		t.Error("no fallback reflection for unknown moods")
	}
}

func TestAchievementPredicates(t *testing.T) {
	catalog := Achievements()
	if len(catalog) != 4 {
		t.Fatalf("achievement catalog has %d entries, want 4", len(catalog))
	}

	none := Progress{}
	for _, a := range catalog {
		if a.Earned(none) {
			t.Errorf("achievement %q earned with zero progress", a.Title)
		}
	}

	all := Progress{
		MoodEntries:         5,
		LikedPosts:          3,
		CompletedActivities: 10,
	}
	all.Stats.Streak = 7
	all.Stats.CompletedTasks = 25
	for _, a := range catalog {
		if !a.Earned(all) {
			t.Errorf("achievement %q not earned with full progress", a.Title)
		}
	}
}
