package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/trainlog/internal/normalizer"
	"github.com/julianstephens/trainlog/internal/parser"
)

type LogCmd struct {
	Activity string   `arg:"" help:"Activity type (Run, Cycle, Swim, Gym, ...)."`
	Date     string   `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Attr     []string `short:"a" help:"Activity attribute as key=value, e.g. -a distance=5km (repeatable)."`
	Exercise []string `short:"x" help:"Exercise line like \"Bench Press: 3×8\" (repeatable, strength types only)."`
	Notes    string   `short:"n" help:"Free-text notes."`
}

func (c *LogCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	attrs, err := parseAttrs(c.Attr)
	if err != nil {
		return err
	}

	exercises := normalizer.ExercisesFromLines(parser.New(), c.Exercise)

	entry, err := normalizer.Normalize(resolveActivity(c.Activity), date, attrs, exercises)
	if err != nil {
		return err
	}
	entry.Notes = c.Notes

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	created, err := ctx.Repo.Create(context.Background(), entry)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s (ID: %s)\n", created.Activity, created.Date, created.ID)
	return nil
}
