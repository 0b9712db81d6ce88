package app

import (
	"errors"
	"strconv"
	"time"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/content"
	"github.com/julianstephens/companion/internal/logger"
	"github.com/julianstephens/companion/internal/models"
	"github.com/julianstephens/companion/internal/storage"
)

// Store is the single source of truth for the four profile collections
// and the only component permitted to mutate them. It is constructed
// explicitly and passed to every consumer; all mutations run
// synchronously on the caller's goroutine, matching the single UI
// event loop the application drives it from. Store is not safe for use
// from multiple goroutines.
//
// Every mutation persists the touched snapshots. A failed write is
// logged and otherwise ignored: the in-memory state stays authoritative
// for the rest of the session and no error reaches the caller.
type Store struct {
	provider storage.Provider

	moodEntries         []models.MoodEntry
	supportPosts        []models.SupportPost
	completedActivities []string
	stats               models.UserStats

	lastMoodID int64
	now        func() time.Time
}

// NewStore creates a store bound to a storage provider. Call Load before
// using it.
func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		now:      time.Now,
	}
}

// SeedPosts returns the fixed post list a fresh profile starts with.
func SeedPosts() []models.SupportPost {
	return []models.SupportPost{
		{
			ID:         1,
			Content:    "Today was challenging but I made it through. Sometimes just taking it one hour at a time helps. Anyone else feel this way?",
			Timestamp:  "2 hours ago",
			Likes:      12,
			Replies:    3,
			Anonymous:  true,
			Supportive: true,
		},
		{
			ID:         2,
			Content:    "I've been practicing the 5-4-3-2-1 grounding technique when I feel anxious. 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste. It really helps center me.",
			Timestamp:  "4 hours ago",
			Likes:      23,
			Replies:    7,
			Anonymous:  true,
			Supportive: true,
		},
	}
}

// Load reads every snapshot from the provider. A missing or unreadable
// snapshot falls back to its built-in default; nothing here can fail the
// application.
func (s *Store) Load() {
	entries, err := s.provider.LoadMoodEntries()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Falling back to empty mood entries", "error", err)
		}
		entries = []models.MoodEntry{}
	}
	s.moodEntries = entries

	posts, err := s.provider.LoadSupportPosts()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Falling back to seed posts", "error", err)
		}
		posts = SeedPosts()
	}
	s.supportPosts = posts

	ids, err := s.provider.LoadCompletedActivities()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Falling back to empty completed activities", "error", err)
		}
		ids = []string{}
	}
	s.completedActivities = ids

	stats, err := s.provider.LoadStats()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Falling back to default stats", "error", err)
		}
		stats = models.DefaultStats()
	}
	s.stats = stats
}

// SaveAll writes every collection back to its snapshot. Unlike the
// mutation paths this surfaces the first write error, since its callers
// (init, restore) exist to put snapshots on disk.
func (s *Store) SaveAll() error {
	if err := s.provider.SaveMoodEntries(s.moodEntries); err != nil {
		return err
	}
	if err := s.provider.SaveSupportPosts(s.supportPosts); err != nil {
		return err
	}
	if err := s.provider.SaveCompletedActivities(s.completedActivities); err != nil {
		return err
	}
	return s.provider.SaveStats(s.stats)
}

// LogMood records a mood check-in. It always succeeds: entries are
// prepended newest-first, the task counter is bumped, and the wellness
// score rises by the mood bonus up to the cap.
func (s *Store) LogMood(mood constants.Mood, note string) models.MoodEntry {
	now := s.now()
	entry := models.MoodEntry{
		ID:        s.nextMoodID(now),
		Mood:      mood,
		Note:      note,
		Timestamp: now.Format(constants.TimestampFormat),
		Date:      now.Format(constants.DateFormat),
	}

	s.moodEntries = append([]models.MoodEntry{entry}, s.moodEntries...)
	s.stats.CompletedTasks++
	s.stats.WellnessScore = capScore(s.stats.WellnessScore + constants.MoodScoreBonus)

	s.persist(s.provider.SaveMoodEntries(s.moodEntries))
	s.persist(s.provider.SaveStats(s.stats))
	return entry
}

// SubmitPost adds a community post. The caller is responsible for
// rejecting blank content before invoking this; the store performs no
// validation.
func (s *Store) SubmitPost(content string) models.SupportPost {
	post := models.SupportPost{
		ID:         s.nextPostID(),
		Content:    content,
		Timestamp:  "Just now",
		Likes:      0,
		Replies:    0,
		Anonymous:  true,
		Supportive: true,
	}

	s.supportPosts = append([]models.SupportPost{post}, s.supportPosts...)
	s.stats.CompletedTasks++
	s.stats.WellnessScore = capScore(s.stats.WellnessScore + constants.PostScoreBonus)

	s.persist(s.provider.SaveSupportPosts(s.supportPosts))
	s.persist(s.provider.SaveStats(s.stats))
	return post
}

// ToggleLike flips the viewer's like on a post, adjusting the count so
// repeated toggling is reversible. Unknown IDs are a no-op. The count is
// clamped at zero in case a snapshot arrives with a desynchronized flag.
func (s *Store) ToggleLike(postID int64) {
	for i := range s.supportPosts {
		if s.supportPosts[i].ID != postID {
			continue
		}
		p := &s.supportPosts[i]
		if p.LikedByUser {
			p.Likes--
			if p.Likes < 0 {
				p.Likes = 0
			}
		} else {
			p.Likes++
		}
		p.LikedByUser = !p.LikedByUser
		s.persist(s.provider.SaveSupportPosts(s.supportPosts))
		return
	}
}

// CompleteActivity marks a catalog activity done. Each activity awards
// points at most once: membership is checked before anything mutates, so
// re-completing is a complete no-op.
func (s *Store) CompleteActivity(activityID string) bool {
	for _, id := range s.completedActivities {
		if id == activityID {
			return false
		}
	}

	s.completedActivities = append(s.completedActivities, activityID)
	s.stats.CompletedTasks++
	s.stats.TotalPoints += content.ActivityPoints(activityID)
	s.stats.WellnessScore = capScore(s.stats.WellnessScore + constants.ActivityScoreBonus)

	s.persist(s.provider.SaveCompletedActivities(s.completedActivities))
	s.persist(s.provider.SaveStats(s.stats))
	return true
}

// UpdateStats shallow-merges the given fields into the stats record.
// Ranges are not validated here.
func (s *Store) UpdateStats(update models.StatsUpdate) {
	if update.Streak != nil {
		s.stats.Streak = *update.Streak
	}
	if update.WellnessScore != nil {
		s.stats.WellnessScore = *update.WellnessScore
	}
	if update.CompletedTasks != nil {
		s.stats.CompletedTasks = *update.CompletedTasks
	}
	if update.TotalTasks != nil {
		s.stats.TotalTasks = *update.TotalTasks
	}
	if update.TotalPoints != nil {
		s.stats.TotalPoints = *update.TotalPoints
	}
	s.persist(s.provider.SaveStats(s.stats))
}

// MoodEntries returns a snapshot of the mood entries, newest first.
func (s *Store) MoodEntries() []models.MoodEntry {
	out := make([]models.MoodEntry, len(s.moodEntries))
	copy(out, s.moodEntries)
	return out
}

// SupportPosts returns a snapshot of the community posts, newest first.
func (s *Store) SupportPosts() []models.SupportPost {
	out := make([]models.SupportPost, len(s.supportPosts))
	copy(out, s.supportPosts)
	return out
}

// CompletedActivities returns a snapshot of the completed activity IDs.
func (s *Store) CompletedActivities() []string {
	out := make([]string, len(s.completedActivities))
	copy(out, s.completedActivities)
	return out
}

// IsActivityCompleted reports whether an activity ID is in the completed set.
func (s *Store) IsActivityCompleted(activityID string) bool {
	for _, id := range s.completedActivities {
		if id == activityID {
			return true
		}
	}
	return false
}

// Stats returns the current statistics record.
func (s *Store) Stats() models.UserStats {
	return s.stats
}

// Progress builds the read-only view the achievement catalog is
// evaluated against.
func (s *Store) Progress() content.Progress {
	liked := 0
	for _, p := range s.supportPosts {
		if p.LikedByUser {
			liked++
		}
	}
	return content.Progress{
		Stats:               s.stats,
		MoodEntries:         len(s.moodEntries),
		LikedPosts:          liked,
		CompletedActivities: len(s.completedActivities),
	}
}

// nextMoodID issues a generation-time-ordered identifier. Two check-ins
// in the same millisecond still get strictly increasing IDs.
func (s *Store) nextMoodID(now time.Time) string {
	id := now.UnixMilli()
	if id <= s.lastMoodID {
		id = s.lastMoodID + 1
	}
	s.lastMoodID = id
	return strconv.FormatInt(id, 10)
}

// nextPostID returns one more than the highest existing post ID, so IDs
// stay monotonically increasing across the seeded list and user posts.
func (s *Store) nextPostID() int64 {
	var max int64
	for _, p := range s.supportPosts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (s *Store) persist(err error) {
	if err != nil {
		// Continue memory-only; changes simply won't survive a restart.
		logger.Warn("Persistence write failed", "error", err)
	}
}

func capScore(score int) int {
	if score > constants.MaxWellnessScore {
		return constants.MaxWellnessScore
	}
	return score
}
