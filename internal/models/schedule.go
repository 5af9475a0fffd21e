package models

// ScheduleDay is one day of a generated training plan. MainSet lines follow
// the "<Name>: <Sets>×<Reps>" grammar but may deviate and are still kept
// verbatim; parsing happens at materialization time.
type ScheduleDay struct {
	Date     string   `json:"date"` // YYYY-MM-DD format
	WarmUp   []string `json:"warmUp"`
	MainSet  []string `json:"mainSet"`
	CoolDown []string `json:"coolDown"`
	Done     bool     `json:"done"`
}

// GeneratedWorkout is a single generated session without a date, as returned
// by the plan generator in single-workout mode.
type GeneratedWorkout struct {
	WarmUp   []string `json:"warmUp"`
	MainSet  []string `json:"mainSet"`
	CoolDown []string `json:"coolDown"`
}

// Profile is optional athlete context forwarded to the plan generator.
type Profile struct {
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
	Goals  string `json:"goals,omitempty"`
}
