package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/companion/internal/constants"
	"github.com/julianstephens/companion/internal/models"
)

// SQLiteStore keeps the snapshots in a single key/value table so the
// independent-snapshot contract is identical to the JSON backend.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := s.open(); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) read(key string, v any) error {
	if err := s.open(); err != nil {
		return err
	}
	var value string
	row := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %s snapshot: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		return fmt.Errorf("failed to parse %s snapshot: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) write(key string, v any) error {
	if err := s.open(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s snapshot: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) LoadProfile() (models.Profile, error) {
	var p models.Profile
	if err := s.read(constants.KeyProfile, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *SQLiteStore) SaveProfile(p models.Profile) error {
	return s.write(constants.KeyProfile, p)
}

func (s *SQLiteStore) LoadMoodEntries() ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := s.read(constants.KeyMoodEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) SaveMoodEntries(entries []models.MoodEntry) error {
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return s.write(constants.KeyMoodEntries, entries)
}

func (s *SQLiteStore) LoadSupportPosts() ([]models.SupportPost, error) {
	var posts []models.SupportPost
	if err := s.read(constants.KeySupportPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *SQLiteStore) SaveSupportPosts(posts []models.SupportPost) error {
	if posts == nil {
		posts = []models.SupportPost{}
	}
	return s.write(constants.KeySupportPosts, posts)
}

func (s *SQLiteStore) LoadCompletedActivities() ([]string, error) {
	var ids []string
	if err := s.read(constants.KeyCompletedActivities, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SQLiteStore) SaveCompletedActivities(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.write(constants.KeyCompletedActivities, ids)
}

func (s *SQLiteStore) LoadStats() (models.UserStats, error) {
	var stats models.UserStats
	if err := s.read(constants.KeyUserStats, &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStats(stats models.UserStats) error {
	return s.write(constants.KeyUserStats, stats)
}
