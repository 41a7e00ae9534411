package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/commands"
)

// actionCmd is the programmatic entry point: one JSON ActionRequest in, one
// JSON ActionResult out, screenshot included. Agent-tool layers shell out to
// this.
var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Execute a single action described as JSON",
	Long: `Executes one action request and prints the full result as JSON, including
the base64 screenshot when the action produces one. The request is read from
--json, or from stdin when --json is omitted.

Example:
  desktopcli action --json '{"action":"left_click","coordinate":{"x":640,"y":400}}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := []byte(actionJSON)
		if actionJSON == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read request from stdin: %v", err)
			}
			payload = data
		}

		var req commands.ActionRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return fmt.Errorf("invalid action request: %v", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result := commands.ExecuteAction(cfg, req)
		printJson(result)
		if !result.Success {
			return fmt.Errorf("%s", result.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.Flags().StringVar(&actionJSON, "json", "", "action request as a JSON object (default: read stdin)")
}
