package normalizer

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/parser"
)

func TestNormalize_GymWithoutExercisesFails(t *testing.T) {
	_, err := Normalize(models.ActivityGym, "2025-07-21", nil, nil)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalize_RunWrapsAttributesIntoSingleSegment(t *testing.T) {
	entry, err := Normalize(models.ActivityRun, "2025-07-21", map[string]string{
		"distance": "5km",
		"duration": "30min",
	}, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if entry.Activity != models.ActivityRun {
		t.Errorf("activity = %s, want Run", entry.Activity)
	}
	if len(entry.Exercises) != 0 {
		t.Errorf("exercises = %v, want empty", entry.Exercises)
	}
	if len(entry.Segments) != 1 {
		t.Fatalf("segments = %v, want one bag", entry.Segments)
	}
	seg := entry.Segments[0]
	if seg["distance"] != "5km" || seg["duration"] != "30min" {
		t.Errorf("segment = %v", seg)
	}
}

func TestNormalize_ExactlyOneSlotNonEmpty(t *testing.T) {
	gym, err := Normalize(models.ActivityGym, "2025-07-21", nil, []models.ExerciseRecord{{Name: "Squats", Sets: "4", Reps: "10"}})
	if err != nil {
		t.Fatalf("Normalize gym failed: %v", err)
	}
	run, err := Normalize(models.ActivityRun, "2025-07-21", nil, nil)
	if err != nil {
		t.Fatalf("Normalize run failed: %v", err)
	}

	for _, entry := range []models.Entry{gym, run} {
		hasExercises := len(entry.Exercises) > 0
		hasSegments := len(entry.Segments) > 0
		if hasExercises == hasSegments {
			t.Errorf("%s entry violates slot exclusivity: exercises=%d segments=%d",
				entry.Activity, len(entry.Exercises), len(entry.Segments))
		}
	}
}

func TestNormalize_EmptyDateDefaultsToToday(t *testing.T) {
	entry, err := Normalize(models.ActivityRun, "", nil, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := time.Now().Format(constants.DateFormat)
	if entry.Date != want {
		t.Errorf("date = %s, want %s", entry.Date, want)
	}
}

func TestNormalize_MalformedDateFails(t *testing.T) {
	_, err := Normalize(models.ActivityRun, "21/07/2025", nil, nil)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for malformed date, got %v", err)
	}
}

func TestNormalize_AttributesFilteredToSchema(t *testing.T) {
	entry, err := Normalize(models.ActivityRun, "2025-07-21", map[string]string{
		"distance": "5",
		"stroke":   "Freestyle", // a swim attribute, not a run one
	}, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	seg := entry.Segments[0]
	if _, ok := seg["stroke"]; ok {
		t.Errorf("run segment kept a swim attribute: %v", seg)
	}
	if seg["distance"] != "5" {
		t.Errorf("segment = %v", seg)
	}
}

func TestNormalize_UnknownTypeKeepsAllAttributes(t *testing.T) {
	entry, err := Normalize(models.ActivityType("Parkour"), "2025-07-21", map[string]string{
		"obstacles": "12",
	}, nil)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if len(entry.Segments) != 1 || entry.Segments[0]["obstacles"] != "12" {
		t.Errorf("segments = %v", entry.Segments)
	}
}

func TestExercisesFromLines(t *testing.T) {
	records := ExercisesFromLines(parser.New(), []string{
		"Squats: 4×10",
		"   ",
		"Plank",
	})

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Name != "Squats" || records[0].Sets != "4" || records[0].Reps != "10" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].Name != "Plank" || records[1].Sets != "" {
		t.Errorf("records[1] = %+v", records[1])
	}
}
