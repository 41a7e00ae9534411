package cli

import (
	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/commands"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run system diagnostics",
	Long:  `Checks for the display utilities this tool depends on and reports what it finds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		printJson(commands.DoctorCommand(cfg, GetVersion()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
