package constants

// Mood represents a mood category a user can check in with
type Mood string

// SessionState represents the current state of the TUI application
type SessionState int

// Category represents the wellness category of an activity
type Category string

// Difficulty represents the difficulty rating of an activity
type Difficulty string

const (
	AppName           = "companion"
	Version           = "v0.3.0"
	DefaultProfileDir = "~/.config/companion"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the display format for mood check-in timestamps
	TimestampFormat = "Jan 2, 2006 3:04 PM"

	// Storage keys. Each key names one independent snapshot; there is no
	// cross-key transactionality.
	KeyMoodEntries         = "mood_entries"
	KeySupportPosts        = "support_posts"
	KeyCompletedActivities = "completed_activities"
	KeyUserStats           = "user_stats"
	KeyProfile             = "profile"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "companion-"

	// Mood categories
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodDown  Mood = "down"
	MoodSad   Mood = "sad"

	// Score increments per positive action. WellnessScore is capped at
	// MaxWellnessScore after every increment.
	MaxWellnessScore      = 100
	MoodScoreBonus        = 2
	PostScoreBonus        = 3
	ActivityScoreBonus    = 5
	DefaultActivityPoints = 10

	// Activity categories
	CategoryMental    Category = "Mental"
	CategoryEmotional Category = "Emotional"
	CategoryPhysical  Category = "Physical"

	// Activity difficulties
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"

	// Default stats seeded on first run
	DefaultStreak         = 7
	DefaultWellnessScore  = 72
	DefaultCompletedTasks = 15
	DefaultTotalTasks     = 20
)

// Session states
const (
	StateDashboard SessionState = iota
	StateMood
	StateMoodNote
	StateCoach
	StateCommunity
	StateCompose
	StateStats
	StateTimer
)
