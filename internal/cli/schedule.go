package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trainlog/internal/materializer"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/parser"
)

type ScheduleShowCmd struct{}

func (c *ScheduleShowCmd) Run(ctx *Context) error {
	days, err := ctx.Cache.Load()
	if err != nil {
		return err
	}
	if len(days) == 0 {
		fmt.Println("No schedule available. Generate one with 'trainlog generate schedule'.")
		return nil
	}

	for i, day := range days {
		if i > 0 {
			fmt.Println()
		}
		printDay(day)
	}
	return nil
}

func printDay(day models.ScheduleDay) {
	header := dateStyle.Render(day.Date)
	if day.Done {
		header = doneStyle.Render(day.Date + " (done)")
	}
	fmt.Println(header)

	printDaySection("Warm-Up", day.WarmUp)
	printDaySection("Main Set", day.MainSet)
	printDaySection("Cool-Down", day.CoolDown)
}

func printDaySection(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Println("  " + headingStyle.Render(title))
	for _, line := range lines {
		fmt.Println("    " + line)
	}
}

type ScheduleCompleteCmd struct {
	Date string `arg:"" help:"Date of the day to mark done (YYYY-MM-DD or 'today')."`
}

func (c *ScheduleCompleteCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Cache.Complete(date); err != nil {
		return err
	}
	fmt.Printf("Marked %s as done.\n", date)
	return nil
}

type ScheduleToggleCmd struct {
	Date string `arg:"" help:"Date of the day to toggle (YYYY-MM-DD or 'today')."`
}

func (c *ScheduleToggleCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Cache.Toggle(date); err != nil {
		return err
	}
	fmt.Printf("Toggled completion for %s.\n", date)
	return nil
}

type ScheduleRemoveCmd struct {
	Date string `arg:"" help:"Date of the day to remove (YYYY-MM-DD or 'today')."`
}

func (c *ScheduleRemoveCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Cache.Remove(date); err != nil {
		return err
	}
	fmt.Printf("Removed %s from the schedule.\n", date)
	return nil
}

type ScheduleClearCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ScheduleClearCmd) Run(ctx *Context) error {
	// Clearing is irreversible, so the destructive intent has to be
	// confirmed here before the cache is touched.
	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Clear the entire schedule? This cannot be undone.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	if err := ctx.Cache.Clear(); err != nil {
		return err
	}
	fmt.Println("Schedule cleared.")
	return nil
}

type ScheduleImportCmd struct {
	Date string `arg:"" help:"Date of the schedule day to import (YYYY-MM-DD or 'today')."`
	Line string `short:"l" help:"Import only this main-set line instead of the whole day."`
}

func (c *ScheduleImportCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	days, err := ctx.Cache.Load()
	if err != nil {
		return err
	}

	var day *models.ScheduleDay
	for i := range days {
		if days[i].Date == date {
			day = &days[i]
			break
		}
	}
	if day == nil {
		return fmt.Errorf("no schedule day for %s", date)
	}

	m := materializer.New(ctx.Session, parser.New())

	var entry models.Entry
	if c.Line != "" {
		entry, err = m.MaterializeLine(*day, c.Line)
	} else {
		entry, err = m.Materialize(*day)
	}
	if err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	created, err := ctx.Repo.Create(context.Background(), entry)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %s as a %s entry (ID: %s)\n", date, created.Activity, created.ID)
	return nil
}
