package blob

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorage_LoadMissingKey(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	data, err := s.Load("schedule")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Errorf("Load of missing key = %q, want nil", data)
	}
}

func TestFileStorage_SaveLoadRoundTrip(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	if err := s.Save("schedule", []byte(`[{"date":"2025-07-21"}]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := s.Load("schedule")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `[{"date":"2025-07-21"}]` {
		t.Errorf("Load = %q", data)
	}
}

func TestFileStorage_SaveOverwritesWholesale(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStorage(dir)

	if err := s.Save("schedule", []byte("old")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("schedule", []byte("new")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := s.Load("schedule")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("Load = %q, want %q", data, "new")
	}

	// No temp files left behind after a successful save.
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestFileStorage_DeleteIsIdempotent(t *testing.T) {
	s := NewFileStorage(t.TempDir())

	if err := s.Save("schedule", []byte("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete("schedule"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("schedule"); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}

	if data, _ := s.Load("schedule"); data != nil {
		t.Errorf("blob still present after delete: %q", data)
	}
}

func TestFileStorage_CreatesDirectoryOnSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	s := NewFileStorage(dir)

	if err := s.Save("profile", []byte("{}")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "profile.json")); err != nil {
		t.Errorf("blob file missing: %v", err)
	}
}
