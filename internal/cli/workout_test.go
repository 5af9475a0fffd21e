package cli

import (
	"encoding/json"
	"testing"

	"github.com/julianstephens/trainlog/internal/blob"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

func TestLoadLastWorkout_MissingIsNotAnError(t *testing.T) {
	workout, err := loadLastWorkout(blob.NewMemory())
	if err != nil {
		t.Fatalf("loadLastWorkout failed: %v", err)
	}
	if workout != nil {
		t.Errorf("expected no workout, got %+v", workout)
	}
}

func TestLoadLastWorkout_ReturnsSavedWorkout(t *testing.T) {
	store := blob.NewMemory()

	saved := models.GeneratedWorkout{
		WarmUp:   []string{"Jumping jacks"},
		MainSet:  []string{"Squats: 4×10", "Push-ups: 3×12"},
		CoolDown: []string{"Stretch"},
	}
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := store.Save(constants.BlobKeyLastWorkout, data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	workout, err := loadLastWorkout(store)
	if err != nil {
		t.Fatalf("loadLastWorkout failed: %v", err)
	}
	if workout == nil {
		t.Fatal("expected a workout, got nil")
	}
	if len(workout.MainSet) != 2 || workout.MainSet[0] != "Squats: 4×10" {
		t.Errorf("main set changed in roundtrip: %+v", workout.MainSet)
	}
	if len(workout.WarmUp) != 1 || len(workout.CoolDown) != 1 {
		t.Errorf("sections changed in roundtrip: %+v", workout)
	}
}

func TestLoadLastWorkout_CorruptCacheIsAnError(t *testing.T) {
	store := blob.NewMemory()
	if err := store.Save(constants.BlobKeyLastWorkout, []byte("not json")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := loadLastWorkout(store); err == nil {
		t.Error("expected an error for a corrupt workout cache")
	}
}
