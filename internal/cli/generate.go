package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/keyring"
	"github.com/julianstephens/trainlog/internal/planner"
)

func newPlannerClient(model string) (*planner.Client, error) {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		return nil, fmt.Errorf("no plan-generator API key configured, run 'trainlog configure --api-key ...': %w", err)
	}
	return planner.NewClient(planner.Config{APIKey: apiKey, Model: model}), nil
}

type GenerateWorkoutCmd struct {
	Prompt string `arg:"" help:"What to ask the generator for, e.g. \"30 minute upper body workout\"."`
	Model  string `help:"Generator model to use."`
}

func (c *GenerateWorkoutCmd) Run(ctx *Context) error {
	client, err := newPlannerClient(c.Model)
	if err != nil {
		return err
	}

	profile, err := loadProfile(ctx.Blobs)
	if err != nil {
		return err
	}

	workout, err := client.GenerateWorkout(context.Background(), c.Prompt, profile)
	if err != nil {
		return err
	}

	// Keep the last generated workout around, like the schedule.
	data, err := json.MarshalIndent(workout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize workout: %w", err)
	}
	if err := ctx.Blobs.Save(constants.BlobKeyLastWorkout, data); err != nil {
		return err
	}

	printSection("Warm-Up", workout.WarmUp)
	printSection("Main Set", workout.MainSet)
	printSection("Cool-Down", workout.CoolDown)
	return nil
}

type GenerateScheduleCmd struct {
	Prompt string `arg:"" help:"What to ask the generator for, e.g. \"5 day beginner plan\"."`
	Model  string `help:"Generator model to use."`
}

func (c *GenerateScheduleCmd) Run(ctx *Context) error {
	client, err := newPlannerClient(c.Model)
	if err != nil {
		return err
	}

	profile, err := loadProfile(ctx.Blobs)
	if err != nil {
		return err
	}

	days, err := client.GenerateSchedule(context.Background(), c.Prompt, profile)
	if err != nil {
		return err
	}

	// A malformed plan never reaches the cache; Replace only runs on a
	// fully parsed response.
	if err := ctx.Cache.Replace(days); err != nil {
		return err
	}

	fmt.Printf("Generated a %d day schedule.\n\n", len(days))
	for _, day := range days {
		fmt.Println(dateStyle.Render(day.Date))
		for _, line := range day.MainSet {
			fmt.Println("  " + line)
		}
	}
	return nil
}

func printSection(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Println(headingStyle.Render(title))
	for _, line := range lines {
		fmt.Println("  " + line)
	}
}
