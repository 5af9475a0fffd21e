package activity

import "github.com/julianstephens/trainlog/internal/models"

// Slot is the Entry field an activity type's data occupies.
type Slot string

const (
	SlotExercises Slot = "exercises"
	SlotSegments  Slot = "segments"
)

// Field is one named attribute expected for an activity, in display order.
type Field struct {
	Name  string
	Label string
}

// Schema describes where an activity type stores its data and which
// attributes it expects there.
type Schema struct {
	Slot   Slot
	Fields []Field
}

var schemas = map[models.ActivityType]Schema{
	models.ActivityGym: {
		Slot: SlotExercises,
		Fields: []Field{
			{Name: "name", Label: "Exercise Name"},
			{Name: "sets", Label: "Sets"},
			{Name: "reps", Label: "Reps"},
			{Name: "weight", Label: "Weight (kg)"},
		},
	},
	models.ActivityStrength: {
		Slot: SlotExercises,
		Fields: []Field{
			{Name: "name", Label: "Exercise Name"},
			{Name: "sets", Label: "Sets"},
			{Name: "reps", Label: "Reps"},
			{Name: "weight", Label: "Weight (kg)"},
		},
	},
	models.ActivityRun: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "distance", Label: "Distance (km)"},
			{Name: "duration", Label: "Duration (min)"},
			{Name: "pace", Label: "Avg. Pace (min/km)"},
		},
	},
	models.ActivityCycle: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "distance", Label: "Distance (km)"},
			{Name: "duration", Label: "Duration (min)"},
			{Name: "cadence", Label: "Cadence (rpm)"},
		},
	},
	models.ActivitySwim: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "laps", Label: "Laps"},
			{Name: "distance", Label: "Distance (m)"},
			{Name: "duration", Label: "Duration (min)"},
			{Name: "stroke", Label: "Stroke"},
			{Name: "poolType", Label: "Pool Type"},
		},
	},
	models.ActivityYoga: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "duration", Label: "Duration (min)"},
			{Name: "style", Label: "Style"},
			{Name: "difficulty", Label: "Difficulty"},
		},
	},
	models.ActivityHike: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "distance", Label: "Distance (km)"},
			{Name: "duration", Label: "Duration (min)"},
			{Name: "elevation", Label: "Elevation Gain (m)"},
			{Name: "trail", Label: "Trail"},
		},
	},
	models.ActivityWalk: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "distance", Label: "Distance (km)"},
			{Name: "duration", Label: "Duration (min)"},
			{Name: "steps", Label: "Steps"},
		},
	},
	models.ActivityRowing: {
		Slot: SlotSegments,
		Fields: []Field{
			{Name: "distance", Label: "Distance (m)"},
			{Name: "duration", Label: "Duration (min)"},
			{Name: "strokeRate", Label: "Stroke Rate (spm)"},
		},
	},
	models.ActivityOther: {
		Slot: SlotSegments,
	},
}

// Lookup returns the schema for an activity type. Unknown types degrade to
// the segments slot with no expected attributes; there is no failure mode.
func Lookup(t models.ActivityType) Schema {
	if s, ok := schemas[t]; ok {
		return s
	}
	return Schema{Slot: SlotSegments}
}

// Types lists the known activity types in display order.
func Types() []models.ActivityType {
	return []models.ActivityType{
		models.ActivityRun,
		models.ActivityCycle,
		models.ActivitySwim,
		models.ActivityGym,
		models.ActivityStrength,
		models.ActivityYoga,
		models.ActivityHike,
		models.ActivityWalk,
		models.ActivityRowing,
		models.ActivityOther,
	}
}
