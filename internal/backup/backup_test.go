package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestProfile(t *testing.T) (string, *Manager) {
	t.Helper()
	dir := t.TempDir()

	snapshots := map[string]string{
		"mood_entries.json":         `[{"id":"1","mood":"good","timestamp":"Mar 14, 2026 9:26 AM","date":"2026-03-14"}]`,
		"support_posts.json":        `[]`,
		"completed_activities.json": `["mindfulness"]`,
		"user_stats.json":           `{"streak":7,"wellnessScore":72,"completedTasks":15,"totalTasks":20,"totalPoints":0}`,
	}
	for name, content := range snapshots {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatalf("failed to write snapshot %s: %v", name, err)
		}
	}

	return dir, NewManager(dir)
}

func TestCreateAndListBackups(t *testing.T) {
	_, mgr := setupTestProfile(t)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if !strings.HasSuffix(path, ".tar.gz") {
		t.Errorf("backup path %q does not end in .tar.gz", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file not created: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path %q, want %q", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("listed backup has zero size")
	}
}

func TestCreateBackupUniquePaths(t *testing.T) {
	_, mgr := setupTestProfile(t)

	// Back-to-back backups collide on the minute timestamp and must
	// fall back to a finer-grained name.
	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create first backup: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create second backup: %v", err)
	}
	if first == second {
		t.Errorf("both backups share path %q", first)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("got %d backups, want 2", len(backups))
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(t.TempDir())

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups from a fresh profile, want 0", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dir, mgr := setupTestProfile(t)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Change a snapshot after the backup, then restore over it.
	statsPath := filepath.Join(dir, "user_stats.json")
	original, err := os.ReadFile(statsPath)
	if err != nil {
		t.Fatalf("failed to read stats snapshot: %v", err)
	}
	changed := `{"streak":0,"wellnessScore":0,"completedTasks":0,"totalTasks":0,"totalPoints":0}`
	if err := os.WriteFile(statsPath, []byte(changed), 0600); err != nil {
		t.Fatalf("failed to overwrite stats snapshot: %v", err)
	}

	if err := mgr.RestoreBackup(path); err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	restored, err := os.ReadFile(statsPath)
	if err != nil {
		t.Fatalf("failed to read restored snapshot: %v", err)
	}
	if string(restored) != string(original) {
		t.Errorf("restored stats = %s, want %s", restored, original)
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	_, mgr := setupTestProfile(t)

	err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "companion-backup-nope.tar.gz"))
	if err == nil {
		t.Fatal("expected error restoring nonexistent backup, got nil")
	}
}

func TestBackupSkipsBackupDirItself(t *testing.T) {
	_, mgr := setupTestProfile(t)

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("failed to create first backup: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create second backup: %v", err)
	}

	// The second archive must not contain the first one nested inside.
	info, err := os.Stat(second)
	if err != nil {
		t.Fatalf("failed to stat second backup: %v", err)
	}
	if info.Size() > 1<<20 {
		t.Errorf("second backup unexpectedly large (%d bytes), likely contains prior backups", info.Size())
	}
}
