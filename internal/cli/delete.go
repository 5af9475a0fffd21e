package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

type DeleteCmd struct {
	ID    string `arg:"" help:"Entry id to delete."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete this entry forever?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Repo.Delete(context.Background(), c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted entry %s\n", c.ID)
	return nil
}
