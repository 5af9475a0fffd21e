package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

type ProfileSetCmd struct {
	Age    int    `help:"Age in years."`
	Gender string `help:"Gender."`
	Height string `help:"Height, e.g. 180cm."`
	Weight string `help:"Weight, e.g. 75kg."`
	Goals  string `help:"Training goals, free text."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	profile, err := loadProfile(ctx.Blobs)
	if err != nil {
		return err
	}
	if profile == nil {
		profile = &models.Profile{}
	}

	if c.Age > 0 {
		profile.Age = c.Age
	}
	if c.Gender != "" {
		profile.Gender = c.Gender
	}
	if c.Height != "" {
		profile.Height = c.Height
	}
	if c.Weight != "" {
		profile.Weight = c.Weight
	}
	if c.Goals != "" {
		profile.Goals = c.Goals
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := ctx.Blobs.Save(constants.BlobKeyProfile, data); err != nil {
		return err
	}

	fmt.Println("Profile saved.")
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	profile, err := loadProfile(ctx.Blobs)
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Println("No profile set. Use 'trainlog profile set' to create one.")
		return nil
	}

	fmt.Println(headingStyle.Render("Profile"))
	if profile.Age > 0 {
		fmt.Printf("  Age:    %d\n", profile.Age)
	}
	if profile.Gender != "" {
		fmt.Printf("  Gender: %s\n", profile.Gender)
	}
	if profile.Height != "" {
		fmt.Printf("  Height: %s\n", profile.Height)
	}
	if profile.Weight != "" {
		fmt.Printf("  Weight: %s\n", profile.Weight)
	}
	if profile.Goals != "" {
		fmt.Printf("  Goals:  %s\n", profile.Goals)
	}
	return nil
}
