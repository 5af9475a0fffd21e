package cli

import (
	"fmt"

	"github.com/julianstephens/trainlog/internal/keyring"
)

type ConfigureCmd struct {
	APIKey string `help:"Plan-generator API key to store in the OS keyring."`
	Remote string `help:"Remote-store PostgreSQL connection string to store in the OS keyring."`
}

func (c *ConfigureCmd) Validate() error {
	if c.APIKey == "" && c.Remote == "" {
		return fmt.Errorf("nothing to configure, pass --api-key and/or --remote")
	}
	return nil
}

func (c *ConfigureCmd) Run(ctx *Context) error {
	if c.APIKey != "" {
		if err := keyring.SetAPIKey(c.APIKey); err != nil {
			return err
		}
		fmt.Println("Stored plan-generator API key in the OS keyring.")
	}
	if c.Remote != "" {
		if err := keyring.SetConnectionString(c.Remote); err != nil {
			return err
		}
		fmt.Println("Stored remote-store connection string in the OS keyring.")
	}
	return nil
}
