package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func TestJSONStoreMissingSnapshots(t *testing.T) {
	store := setupTestJSONStore(t)

	if _, err := store.LoadMoodEntries(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadMoodEntries error = %v, want ErrNotFound", err)
	}
	if _, err := store.LoadSupportPosts(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSupportPosts error = %v, want ErrNotFound", err)
	}
	if _, err := store.LoadCompletedActivities(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadCompletedActivities error = %v, want ErrNotFound", err)
	}
	if _, err := store.LoadStats(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadStats error = %v, want ErrNotFound", err)
	}
	if _, err := store.LoadProfile(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadProfile error = %v, want ErrNotFound", err)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	entries := []models.MoodEntry{
		{ID: "100", Mood: constants.MoodGreat, Note: "sunny", Timestamp: "Mar 14, 2026 9:26 AM", Date: "2026-03-14"},
		{ID: "99", Mood: constants.MoodDown, Timestamp: "Mar 13, 2026 8:00 PM", Date: "2026-03-13"},
	}
	if err := store.SaveMoodEntries(entries); err != nil {
		t.Fatalf("failed to save mood entries: %v", err)
	}
	gotEntries, err := store.LoadMoodEntries()
	if err != nil {
		t.Fatalf("failed to load mood entries: %v", err)
	}
	if !reflect.DeepEqual(gotEntries, entries) {
		t.Errorf("mood entries changed in round trip:\ngot  %+v\nwant %+v", gotEntries, entries)
	}

	posts := []models.SupportPost{
		{ID: 3, Content: "hang in there", Timestamp: "Just now", Likes: 1, Anonymous: true, Supportive: true, LikedByUser: true},
	}
	if err := store.SaveSupportPosts(posts); err != nil {
		t.Fatalf("failed to save posts: %v", err)
	}
	gotPosts, err := store.LoadSupportPosts()
	if err != nil {
		t.Fatalf("failed to load posts: %v", err)
	}
	if !reflect.DeepEqual(gotPosts, posts) {
		t.Errorf("posts changed in round trip:\ngot  %+v\nwant %+v", gotPosts, posts)
	}

	ids := []string{"mindfulness", "hydration"}
	if err := store.SaveCompletedActivities(ids); err != nil {
		t.Fatalf("failed to save completed activities: %v", err)
	}
	gotIDs, err := store.LoadCompletedActivities()
	if err != nil {
		t.Fatalf("failed to load completed activities: %v", err)
	}
	if !reflect.DeepEqual(gotIDs, ids) {
		t.Errorf("completed activities changed in round trip: got %v, want %v", gotIDs, ids)
	}

	stats := models.UserStats{Streak: 8, WellnessScore: 80, CompletedTasks: 16, TotalTasks: 20, TotalPoints: 25}
	if err := store.SaveStats(stats); err != nil {
		t.Fatalf("failed to save stats: %v", err)
	}
	gotStats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("failed to load stats: %v", err)
	}
	if gotStats != stats {
		t.Errorf("stats changed in round trip: got %+v, want %+v", gotStats, stats)
	}
}

func TestJSONStoreNilSlicesSavedAsEmpty(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.SaveMoodEntries(nil); err != nil {
		t.Fatalf("failed to save nil entries: %v", err)
	}

	// The snapshot must contain a JSON array, not null.
	data, err := os.ReadFile(filepath.Join(store.GetConfigPath(), constants.KeyMoodEntries+".json"))
	if err != nil {
		t.Fatalf("failed to read snapshot file: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("nil entries serialized as %q, want %q", string(data), "[]")
	}
}

func TestJSONStoreCorruptSnapshot(t *testing.T) {
	store := setupTestJSONStore(t)

	path := filepath.Join(store.GetConfigPath(), constants.KeyUserStats+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt snapshot: %v", err)
	}

	_, err := store.LoadStats()
	if err == nil {
		t.Fatal("expected error loading corrupt snapshot, got nil")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("corrupt snapshot reported as ErrNotFound")
	}
}

func TestJSONStoreSnapshotsAreIndependent(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.SaveCompletedActivities([]string{"gratitude"}); err != nil {
		t.Fatalf("failed to save completed activities: %v", err)
	}

	// Writing one snapshot must not create the others.
	if _, err := store.LoadMoodEntries(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadMoodEntries error = %v, want ErrNotFound", err)
	}
	if _, err := store.LoadStats(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadStats error = %v, want ErrNotFound", err)
	}
}

func TestJSONStoreProfileRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	profile := models.Profile{ID: "ab2f2f9e-9347-4a16-a3bd-401ebe7d4d4c"}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}
	got, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	if got.ID != profile.ID {
		t.Errorf("profile ID = %q, want %q", got.ID, profile.ID)
	}
}
