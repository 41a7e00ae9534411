package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/commands"
)

var ioWithScreenshot bool

var ioCmd = &cobra.Command{
	Use:   "io",
	Short: "Input operations against the display",
	Long:  `Inject pointer and keyboard input: move, click, drag, type, scroll, and key presses.`,
}

var ioMoveCmd = &cobra.Command{
	Use:   "move [x,y]",
	Short: "Move the pointer to the given API-space coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coordinate, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}
		return runIoAction(commands.ActionRequest{
			Action:     commands.ActionMouseMove,
			Coordinate: coordinate,
		})
	},
}

// clickKinds maps the io click subcommand names to action kinds.
var clickKinds = map[string]commands.ActionKind{
	"click":       commands.ActionLeftClick,
	"rightclick":  commands.ActionRightClick,
	"middleclick": commands.ActionMiddleClick,
	"doubleclick": commands.ActionDoubleClick,
	"tripleclick": commands.ActionTripleClick,
}

func newClickCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [x,y]",
		Short: "Perform a " + name + ", optionally moving to x,y first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := commands.ActionRequest{
				Action:      clickKinds[name],
				ModifierKey: ioModifier,
			}
			if len(args) == 1 {
				coordinate, err := parseCoordinate(args[0])
				if err != nil {
					return err
				}
				req.Coordinate = coordinate
			}
			return runIoAction(req)
		},
	}
}

var ioDragCmd = &cobra.Command{
	Use:   "drag [x,y]",
	Short: "Drag with the left button from the current pointer position to x,y",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coordinate, err := parseCoordinate(args[0])
		if err != nil {
			return err
		}
		return runIoAction(commands.ActionRequest{
			Action:     commands.ActionLeftClickDrag,
			Coordinate: coordinate,
		})
	},
}

var ioDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Press and hold the left mouse button",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIoAction(commands.ActionRequest{Action: commands.ActionLeftMouseDown})
	},
}

var ioUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Release the left mouse button",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIoAction(commands.ActionRequest{Action: commands.ActionLeftMouseUp})
	},
}

var ioKeyCmd = &cobra.Command{
	Use:   "key [keyspec]",
	Short: "Press a key or key combo, e.g. 'Return' or 'ctrl+shift+t'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIoAction(commands.ActionRequest{
			Action: commands.ActionKey,
			Text:   args[0],
		})
	},
}

var ioTypeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type literal text into the focused window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIoAction(commands.ActionRequest{
			Action: commands.ActionType,
			Text:   args[0],
		})
	},
}

var ioScrollCmd = &cobra.Command{
	Use:   "scroll [up|down|left|right]",
	Short: "Scroll the wheel in a direction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.ActionRequest{
			Action:          commands.ActionScroll,
			ScrollDirection: commands.ScrollDirection(args[0]),
			ScrollAmount:    ioAmount,
			ModifierKey:     ioModifier,
		}
		if ioAt != "" {
			coordinate, err := parseCoordinate(ioAt)
			if err != nil {
				return err
			}
			req.Coordinate = coordinate
		}
		return runIoAction(req)
	},
}

var ioWaitCmd = &cobra.Command{
	Use:   "wait [seconds]",
	Short: "Sleep for a duration, then re-observe the screen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid duration '%s': %v", args[0], err)
		}
		return runIoAction(commands.ActionRequest{
			Action:   commands.ActionWait,
			Duration: &seconds,
		})
	},
}

var ioHoldKeyCmd = &cobra.Command{
	Use:   "holdkey [keyspec] [seconds]",
	Short: "Hold a key down for a duration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid duration '%s': %v", args[1], err)
		}
		return runIoAction(commands.ActionRequest{
			Action:   commands.ActionHoldKey,
			Text:     args[0],
			Duration: &seconds,
		})
	},
}

var ioCursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Report the pointer position in API-space coordinates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIoAction(commands.ActionRequest{Action: commands.ActionCursorPosition})
	},
}

// runIoAction executes the action and prints the result. The screenshot
// payload is elided from terminal output unless requested, it is rarely useful
// as base64 on a console.
func runIoAction(req commands.ActionRequest) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result := commands.ExecuteAction(cfg, req)

	printed := *result
	if !ioWithScreenshot && printed.Screenshot != "" {
		printed.Output = fmt.Sprintf("%s (screenshot elided, %d bytes)", printed.Output, len(printed.Screenshot))
		printed.Screenshot = ""
	}
	printJson(&printed)

	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ioCmd)

	ioCmd.PersistentFlags().BoolVar(&ioWithScreenshot, "with-screenshot", false, "include the base64 screenshot in output")
	ioCmd.PersistentFlags().StringVar(&ioModifier, "modifier", "", "modifier key held around the operation (ctrl, shift, alt, super)")

	ioCmd.AddCommand(ioMoveCmd)
	for name := range clickKinds {
		ioCmd.AddCommand(newClickCommand(name))
	}
	ioCmd.AddCommand(ioDragCmd)
	ioCmd.AddCommand(ioDownCmd)
	ioCmd.AddCommand(ioUpCmd)
	ioCmd.AddCommand(ioKeyCmd)
	ioCmd.AddCommand(ioTypeCmd)
	ioCmd.AddCommand(ioScrollCmd)
	ioCmd.AddCommand(ioWaitCmd)
	ioCmd.AddCommand(ioHoldKeyCmd)
	ioCmd.AddCommand(ioCursorCmd)

	ioScrollCmd.Flags().IntVar(&ioAmount, "amount", 3, "number of wheel clicks")
	ioScrollCmd.Flags().StringVar(&ioAt, "at", "", "move to 'x,y' before scrolling")
}
