package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mfulz/phonebook/internal/config"
	"github.com/mfulz/phonebook/internal/configloader"
)

// NewConfigCmd creates the command printing the effective configuration.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  func(c *cobra.Command, _ []string) error {
			cfg := configloader.MustGetConfig[*config.Config]()
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = c.OutOrStdout().Write(out)
			return err
		},
	}
}
