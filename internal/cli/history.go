package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/remote"
)

type HistoryCmd struct {
	Limit int `short:"l" help:"Maximum number of entries to show (0 = all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Repo.List(context.Background())
	if err != nil {
		if !errors.Is(err, remote.ErrUnavailable) {
			return err
		}
		// Stale but available: keep rendering the mirror.
		fmt.Println(mutedStyle.Render("Remote store unreachable, showing last-known local data."))
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	var gym, other []models.Entry
	for _, e := range entries {
		if e.Activity.IsStrength() {
			gym = append(gym, e)
		} else {
			other = append(other, e)
		}
	}

	if len(gym) > 0 {
		fmt.Println(headingStyle.Render("Gym Workouts"))
		for _, e := range gym {
			printGymEntry(e)
		}
	}
	if len(other) > 0 {
		if len(gym) > 0 {
			fmt.Println()
		}
		fmt.Println(headingStyle.Render("Other Activities"))
		for _, e := range other {
			printSegmentEntry(e)
		}
	}
	return nil
}

func printGymEntry(e models.Entry) {
	fmt.Printf("%s  %s  %s\n", dateStyle.Render(e.Date), e.Activity, mutedStyle.Render(e.ID))
	for _, ex := range e.Exercises {
		line := "  " + ex.Name
		if ex.Sets != "" || ex.Reps != "" {
			line += fmt.Sprintf(": %s×%s", ex.Sets, ex.Reps)
		}
		if ex.Weight != "" {
			line += " @ " + ex.Weight + "kg"
		}
		fmt.Println(line)
	}
	if e.Notes != "" {
		fmt.Println(mutedStyle.Render("  " + e.Notes))
	}
}

func printSegmentEntry(e models.Entry) {
	fmt.Printf("%s  %s  %s\n", dateStyle.Render(e.Date), e.Activity, mutedStyle.Render(e.ID))
	for _, seg := range e.Segments {
		if len(seg) == 0 {
			continue
		}
		keys := make([]string, 0, len(seg))
		for k := range seg {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+seg[k])
		}
		fmt.Println("  " + strings.Join(parts, ", "))
	}
	if e.Notes != "" {
		fmt.Println(mutedStyle.Render("  " + e.Notes))
	}
}
