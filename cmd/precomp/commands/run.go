package commands

import (
	"github.com/spf13/cobra"
)

// DefaultSettingsFile is used when run is called without an argument.
const DefaultSettingsFile = "precomp.yaml"

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [settings-file]",
		Short: "Compile the sources referenced by the configured tests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			// A positional settings file wins over the flag.
			if len(args) > 0 {
				settingsPath = args[0]
			}
			return c.app.Run(cmd.Context(), settingsPath)
		},
	}
}
