package normalizer

import (
	"fmt"
	"time"

	"github.com/julianstephens/trainlog/internal/activity"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/parser"
)

// ValidationError reports malformed normalizer input. It is always a local
// failure, never a remote-store one, and is not retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid entry: " + e.Reason
}

// Normalize builds a canonical Entry for an activity type from a raw
// attribute bag and raw exercise records. The result has no ID or owner;
// those are supplied by the store and the repository. An empty date defaults
// to today.
//
// The registry decides which slot the data lands in: strength-class types
// copy the exercises and leave segments empty, everything else wraps the
// attributes into a single segment and leaves exercises empty. Exactly one
// of the two slots is non-empty on the returned entry.
func Normalize(t models.ActivityType, date string, attrs map[string]string, exercises []models.ExerciseRecord) (models.Entry, error) {
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	} else if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return models.Entry{}, &ValidationError{Reason: fmt.Sprintf("date %q is not in YYYY-MM-DD format", date)}
	}

	entry := models.Entry{
		Date:      date,
		Activity:  t,
		Exercises: []models.ExerciseRecord{},
		Segments:  []models.Segment{},
	}

	schema := activity.Lookup(t)
	switch schema.Slot {
	case activity.SlotExercises:
		if len(exercises) == 0 {
			return models.Entry{}, &ValidationError{Reason: fmt.Sprintf("at least one exercise is required for %s", t)}
		}
		entry.Exercises = append(entry.Exercises, exercises...)
	default:
		entry.Segments = append(entry.Segments, segmentFor(schema, attrs))
	}

	return entry, nil
}

// segmentFor copies the raw attributes into a segment bag. When the schema
// names its attributes, only those are kept; an unknown type has no
// attribute list and keeps everything.
func segmentFor(schema activity.Schema, attrs map[string]string) models.Segment {
	seg := models.Segment{}
	if len(schema.Fields) == 0 {
		for k, v := range attrs {
			if v != "" {
				seg[k] = v
			}
		}
		return seg
	}
	for _, f := range schema.Fields {
		if v := attrs[f.Name]; v != "" {
			seg[f.Name] = v
		}
	}
	return seg
}

// ExercisesFromLines runs each raw line through the parser. Lines that trim
// to nothing are dropped; everything else is kept, even when the parser
// recovered only a name.
func ExercisesFromLines(p parser.Parser, lines []string) []models.ExerciseRecord {
	var records []models.ExerciseRecord
	for _, line := range lines {
		rec := p.Parse(line)
		if rec.Name == "" && rec.Sets == "" && rec.Reps == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}
