package models

import "github.com/julianstephens/companion/internal/constants"

// UserStats is the derived aggregate record. It is incrementally bumped
// alongside the collections rather than recomputed from them, so the
// stored value is allowed to diverge from a from-scratch recomputation.
type UserStats struct {
	Streak         int `json:"streak"`
	WellnessScore  int `json:"wellnessScore"`
	CompletedTasks int `json:"completedTasks"`
	TotalTasks     int `json:"totalTasks"`
	TotalPoints    int `json:"totalPoints"`
}

// StatsUpdate is a partial update of UserStats; nil fields are left
// unchanged. No range validation is applied.
type StatsUpdate struct {
	Streak         *int
	WellnessScore  *int
	CompletedTasks *int
	TotalTasks     *int
	TotalPoints    *int
}

// DefaultStats returns the stats record seeded on first run.
func DefaultStats() UserStats {
	return UserStats{
		Streak:         constants.DefaultStreak,
		WellnessScore:  constants.DefaultWellnessScore,
		CompletedTasks: constants.DefaultCompletedTasks,
		TotalTasks:     constants.DefaultTotalTasks,
		TotalPoints:    0,
	}
}
