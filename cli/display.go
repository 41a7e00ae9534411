package cli

import (
	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/commands"
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Display information commands",
}

var displayInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the display target and coordinate spaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		info, err := commands.DisplayInfoCommand(cfg)
		if err != nil {
			return err
		}

		printJson(info)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(displayCmd)
	displayCmd.AddCommand(displayInfoCmd)
}
