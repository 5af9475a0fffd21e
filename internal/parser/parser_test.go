package parser

import (
	"testing"

	"github.com/julianstephens/trainlog/internal/models"
)

func TestParse_WellFormedLine(t *testing.T) {
	p := New()

	rec := p.Parse("Push-ups: 3×12")

	want := models.ExerciseRecord{Name: "Push-ups", Sets: "3", Reps: "12"}
	if rec != want {
		t.Errorf("Parse(%q) = %+v, want %+v", "Push-ups: 3×12", rec, want)
	}
}

func TestParse_Table(t *testing.T) {
	p := New()

	tests := []struct {
		line string
		want models.ExerciseRecord
	}{
		{"Squats: 4×10", models.ExerciseRecord{Name: "Squats", Sets: "4", Reps: "10"}},
		{"  Bench Press : 5×5 ", models.ExerciseRecord{Name: "Bench Press", Sets: "5", Reps: "5"}},
		{"Deadlift: 12×8", models.ExerciseRecord{Name: "Deadlift", Sets: "12", Reps: "8"}},
		// no multiplier on the right side
		{"Plank: 60 seconds", models.ExerciseRecord{Name: "Plank"}},
		// missing colon: the whole trimmed line is the name
		{"Plank", models.ExerciseRecord{Name: "Plank"}},
		{"  Jog in place  ", models.ExerciseRecord{Name: "Jog in place"}},
		// glyph with only one side populated
		{"Burpees: ×15", models.ExerciseRecord{Name: "Burpees", Reps: "15"}},
		{"Burpees: 3×", models.ExerciseRecord{Name: "Burpees", Sets: "3"}},
		// glyph without digits is skipped in favor of a later one
		{"Lunges: warm ×, then 3×10", models.ExerciseRecord{Name: "Lunges", Sets: "3", Reps: "10"}},
		// only the first qualifying group counts
		{"Rows: 3×8, 2×12", models.ExerciseRecord{Name: "Rows", Sets: "3", Reps: "8"}},
		// name may be empty; a normalizer concern, not a parser error
		{": 3×12", models.ExerciseRecord{Sets: "3", Reps: "12"}},
	}

	for _, tt := range tests {
		got := p.Parse(tt.line)
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParse_EmptyLine(t *testing.T) {
	p := New()

	rec := p.Parse("")

	if rec != (models.ExerciseRecord{}) {
		t.Errorf("Parse(\"\") = %+v, want zero record", rec)
	}
}

func TestParse_NeverDerivesWeightOrNotes(t *testing.T) {
	p := New()

	rec := p.Parse("Bench Press: 3×8 @ 60kg, slow tempo")

	if rec.Weight != "" || rec.Notes != "" {
		t.Errorf("Parse populated weight/notes: %+v", rec)
	}
}
