package models

// ActivityType identifies the kind of session an entry records.
type ActivityType string

const (
	ActivityGym      ActivityType = "Gym"
	ActivityStrength ActivityType = "Strength Training"
	ActivityRun      ActivityType = "Run"
	ActivityCycle    ActivityType = "Cycle"
	ActivitySwim     ActivityType = "Swim"
	ActivityYoga     ActivityType = "Yoga"
	ActivityHike     ActivityType = "Hike"
	ActivityWalk     ActivityType = "Walk"
	ActivityRowing   ActivityType = "Rowing"
	ActivityOther    ActivityType = "Other"
)

// IsStrength reports whether the activity stores its data as exercise
// records rather than segments.
func (t ActivityType) IsStrength() bool {
	return t == ActivityGym || t == ActivityStrength
}

// ExerciseRecord is one strength movement within an entry or schedule day.
// Sets, Reps and Weight are strings; the empty string means "unspecified",
// it is never a parse failure.
type ExerciseRecord struct {
	Name   string `json:"name"`
	Sets   string `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"` // kg, unit implicit
	Notes  string `json:"notes,omitempty"`
}

// Segment is an activity-specific attribute bag (distance, duration, laps,
// pace, ...). Units are opaque strings.
type Segment map[string]string

// Entry is one logged activity session.
//
// Exactly one of Exercises and Segments is non-empty on a saved entry:
// Exercises for strength-class activities, Segments for everything else.
type Entry struct {
	ID        string           `json:"id,omitempty"`
	OwnerID   string           `json:"owner_id"`
	Date      string           `json:"date"` // YYYY-MM-DD format
	Activity  ActivityType     `json:"activity"`
	Exercises []ExerciseRecord `json:"exercises"`
	Segments  []Segment        `json:"segments"`
	Notes     string           `json:"notes,omitempty"`
}

// Session carries the identity an operation acts on behalf of. It is passed
// explicitly into constructors, never read from ambient state.
type Session struct {
	UserID string
}
