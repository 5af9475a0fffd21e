package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/trainlog/internal/blob"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

type WorkoutShowCmd struct{}

func (c *WorkoutShowCmd) Run(ctx *Context) error {
	workout, err := loadLastWorkout(ctx.Blobs)
	if err != nil {
		return err
	}
	if workout == nil {
		fmt.Println("No workout generated yet. Use 'trainlog generate workout' to create one.")
		return nil
	}

	printSection("Warm-Up", workout.WarmUp)
	printSection("Main Set", workout.MainSet)
	printSection("Cool-Down", workout.CoolDown)
	return nil
}

// loadLastWorkout reads the most recently generated workout, if any.
func loadLastWorkout(store blob.Storage) (*models.GeneratedWorkout, error) {
	data, err := store.Load(constants.BlobKeyLastWorkout)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var w models.GeneratedWorkout
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse workout cache: %w", err)
	}
	return &w, nil
}
