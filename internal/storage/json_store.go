package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/models"
)

// JSONStore keeps one JSON file per storage key inside the profile
// directory. It is the default backend.
type JSONStore struct {
	dir string
}

func NewJSONStore(profileDir string) *JSONStore {
	return &JSONStore{dir: profileDir}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.dir
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *JSONStore) read(key string, v any) error {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %s snapshot: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s snapshot: %w", key, err)
	}
	return nil
}

func (s *JSONStore) write(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s snapshot: %w", key, err)
	}
	if err := os.WriteFile(s.keyPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", key, err)
	}
	return nil
}

func (s *JSONStore) LoadProfile() (models.Profile, error) {
	var p models.Profile
	if err := s.read(constants.KeyProfile, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *JSONStore) SaveProfile(p models.Profile) error {
	return s.write(constants.KeyProfile, p)
}

func (s *JSONStore) LoadMoodEntries() ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := s.read(constants.KeyMoodEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *JSONStore) SaveMoodEntries(entries []models.MoodEntry) error {
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return s.write(constants.KeyMoodEntries, entries)
}

func (s *JSONStore) LoadSupportPosts() ([]models.SupportPost, error) {
	var posts []models.SupportPost
	if err := s.read(constants.KeySupportPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *JSONStore) SaveSupportPosts(posts []models.SupportPost) error {
	if posts == nil {
		posts = []models.SupportPost{}
	}
	return s.write(constants.KeySupportPosts, posts)
}

func (s *JSONStore) LoadCompletedActivities() ([]string, error) {
	var ids []string
	if err := s.read(constants.KeyCompletedActivities, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *JSONStore) SaveCompletedActivities(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.write(constants.KeyCompletedActivities, ids)
}

func (s *JSONStore) LoadStats() (models.UserStats, error) {
	var stats models.UserStats
	if err := s.read(constants.KeyUserStats, &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (s *JSONStore) SaveStats(stats models.UserStats) error {
	return s.write(constants.KeyUserStats, stats)
}
