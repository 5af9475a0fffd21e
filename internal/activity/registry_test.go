package activity

import (
	"testing"

	"github.com/julianstephens/trainlog/internal/models"
)

func TestLookup_StrengthTypesUseExerciseSlot(t *testing.T) {
	for _, typ := range []models.ActivityType{models.ActivityGym, models.ActivityStrength} {
		schema := Lookup(typ)
		if schema.Slot != SlotExercises {
			t.Errorf("Lookup(%s).Slot = %s, want %s", typ, schema.Slot, SlotExercises)
		}
	}
}

func TestLookup_EnduranceTypesUseSegmentSlot(t *testing.T) {
	for _, typ := range []models.ActivityType{
		models.ActivityRun, models.ActivityCycle, models.ActivitySwim,
		models.ActivityYoga, models.ActivityHike, models.ActivityWalk,
		models.ActivityRowing, models.ActivityOther,
	} {
		schema := Lookup(typ)
		if schema.Slot != SlotSegments {
			t.Errorf("Lookup(%s).Slot = %s, want %s", typ, schema.Slot, SlotSegments)
		}
	}
}

func TestLookup_RunFields(t *testing.T) {
	schema := Lookup(models.ActivityRun)

	want := []string{"distance", "duration", "pace"}
	if len(schema.Fields) != len(want) {
		t.Fatalf("Run schema has %d fields, want %d", len(schema.Fields), len(want))
	}
	for i, name := range want {
		if schema.Fields[i].Name != name {
			t.Errorf("Run field %d = %s, want %s", i, schema.Fields[i].Name, name)
		}
	}
}

func TestLookup_UnknownTypeDegradesGracefully(t *testing.T) {
	schema := Lookup(models.ActivityType("Parkour"))

	if schema.Slot != SlotSegments {
		t.Errorf("unknown type slot = %s, want %s", schema.Slot, SlotSegments)
	}
	if len(schema.Fields) != 0 {
		t.Errorf("unknown type has %d fields, want 0", len(schema.Fields))
	}
}
