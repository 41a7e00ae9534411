package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/desktop-next/desktopcli/commands"
	"github.com/desktop-next/desktopcli/display"
	"github.com/desktop-next/desktopcli/utils"
)

const version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "desktopcli",
	Short: "Drive a virtual desktop with agent-friendly input actions",
	Long:  `A tool for controlling an X11 virtual framebuffer: inject pointer and keyboard input, capture screenshots, and expose both over JSON-RPC for LLM agents.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: "+commands.ConfigFilePath()+")")
	rootCmd.PersistentFlags().StringVar(&displayName, "display", "", "X display to address, e.g. ':1' (default: $DISPLAY)")
	rootCmd.PersistentFlags().StringVar(&apiSize, "api-size", "", "logical coordinate space as WxH (default 1280x800)")
	rootCmd.PersistentFlags().StringVar(&screenSize, "screen-size", "", "real screen resolution as WxH (default: autodetect)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetVersion returns the CLI version string.
func GetVersion() string {
	return version
}

// loadConfig builds the executor config from the config file plus any flag
// overrides.
func loadConfig() (commands.Config, error) {
	path := configPath
	if path == "" {
		path = commands.ConfigFilePath()
	}

	cfg, err := commands.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if displayName != "" {
		cfg.Display = displayName
	}
	if apiSize != "" {
		cfg.APISpace, err = parseSize(apiSize)
		if err != nil {
			return cfg, fmt.Errorf("invalid --api-size: %w", err)
		}
	}
	if screenSize != "" {
		cfg.ScreenSpace, err = parseSize(screenSize)
		if err != nil {
			return cfg, fmt.Errorf("invalid --screen-size: %w", err)
		}
	}

	return cfg, nil
}

// parseSize parses a "WxH" string into a Size.
func parseSize(value string) (display.Size, error) {
	w, h, ok := strings.Cut(value, "x")
	if !ok {
		return display.Size{}, fmt.Errorf("expected WxH, got %q", value)
	}

	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return display.Size{}, fmt.Errorf("expected positive integers in WxH, got %q", value)
	}

	return display.Size{Width: width, Height: height}, nil
}

// parseCoordinate parses an "x,y" string into an API-space point.
func parseCoordinate(value string) (*commands.Point, error) {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return nil, fmt.Errorf("invalid coordinate format. Expected 'x,y', got '%s'", value)
	}

	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return nil, fmt.Errorf("invalid coordinate values. x and y must be integers. Got '%s'", value)
	}

	return &commands.Point{X: x, Y: y}, nil
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}
