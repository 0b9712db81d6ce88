package content

import "github.com/julianstephens/companion/internal/constants"

// Canned reflection text shown after a mood check-in. This is static
// lookup data, not inference; swapping the table changes no logic.
var reflections = map[constants.Mood]string{
	constants.MoodGreat: "It's wonderful to see you feeling great! This positive energy is a gift - consider what contributed to this feeling today and how you might nurture more of these moments.",
	constants.MoodGood:  "You're in a good space today! This is a solid foundation to build upon. Maybe try a small act of kindness for yourself or others to amplify this positive feeling.",
	constants.MoodOkay:  "Feeling okay is perfectly valid. Some days are neutral, and that's part of life's rhythm. Consider a gentle activity like a short walk or listening to music you enjoy.",
	constants.MoodDown:  "I understand you're feeling down today. Remember, this feeling is temporary. Have you tried some deep breathing or reaching out to someone you trust? You don't have to face this alone.",
	constants.MoodSad:   "I'm here for you during this difficult moment. Sadness is a natural human emotion, but you deserve support. Consider gentle self-care activities or connecting with a friend, counselor, or support group.",
}

const fallbackReflection = "Thank you for checking in with yourself today. Self-awareness is the first step toward emotional well-being."

// Reflection returns the canned reflection for a mood category, falling
// back to a generic message for unknown categories.
func Reflection(mood constants.Mood) string {
	if r, ok := reflections[mood]; ok {
		return r
	}
	return fallbackReflection
}
