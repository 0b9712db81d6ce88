package content

import "github.com/julianstephens/companion/internal/constants"

// MoodChoice is one option in the fixed mood picker.
type MoodChoice struct {
	Emoji string
	Label string
	Value constants.Mood
	Scale int // 1-9 scale value used by the weekly overview
}

var moods = []MoodChoice{
	{Emoji: "😄", Label: "Great", Value: constants.MoodGreat, Scale: 9},
	{Emoji: "🙂", Label: "Good", Value: constants.MoodGood, Scale: 7},
	{Emoji: "😐", Label: "Okay", Value: constants.MoodOkay, Scale: 5},
	{Emoji: "☹️", Label: "Down", Value: constants.MoodDown, Scale: 3},
	{Emoji: "😢", Label: "Sad", Value: constants.MoodSad, Scale: 1},
}

// Moods returns the mood picker choices in display order.
func Moods() []MoodChoice {
	out := make([]MoodChoice, len(moods))
	copy(out, moods)
	return out
}

// FindMood looks up a mood choice by category.
func FindMood(mood constants.Mood) (MoodChoice, bool) {
	for _, m := range moods {
		if m.Value == mood {
			return m, true
		}
	}
	return MoodChoice{}, false
}

// MoodScale returns the 1-9 scale value for a mood category. Unknown
// categories rate as neutral.
func MoodScale(mood constants.Mood) int {
	if m, ok := FindMood(mood); ok {
		return m.Scale
	}
	return 5
}
