package commands

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"

	"github.com/desktop-next/desktopcli/display"
	"github.com/desktop-next/desktopcli/utils"
)

// Defaults for the executor's tunables. The settle delay is a heuristic race
// mitigation: it gives the compositor time to repaint between an injected
// input and the screenshot that observes it. A loaded host can still outrun
// it; that is accepted flakiness, not something we retry around.
const (
	DefaultAPIWidth  = 1280
	DefaultAPIHeight = 800

	DefaultSettleDelay    = 500 * time.Millisecond
	DefaultTypeDelayMs    = 12
	DefaultTypeChunkSize  = 50
	DefaultClickDelayMs   = 10
	DefaultCommandTimeout = display.DefaultCommandTimeout
)

// Config carries everything an action execution needs besides the request
// itself: the coordinate spaces, the display target, and timing tunables.
type Config struct {
	// APISpace is the fixed logical resolution the agent reasons in.
	APISpace display.Size

	// ScreenSpace is the real display resolution. Zero means autodetect from
	// the backend.
	ScreenSpace display.Size

	// Display selects the X DISPLAY to address, e.g. ":1". Empty inherits the
	// process environment.
	Display string

	SettleDelay    time.Duration
	TypeDelayMs    int
	TypeChunkSize  int
	ClickDelayMs   int
	CommandTimeout time.Duration
}

// DefaultConfig returns a config with all tunables at their defaults and the
// display taken from the environment.
func DefaultConfig() Config {
	return Config{
		APISpace:       display.Size{Width: DefaultAPIWidth, Height: DefaultAPIHeight},
		Display:        os.Getenv("DISPLAY"),
		SettleDelay:    DefaultSettleDelay,
		TypeDelayMs:    DefaultTypeDelayMs,
		TypeChunkSize:  DefaultTypeChunkSize,
		ClickDelayMs:   DefaultClickDelayMs,
		CommandTimeout: DefaultCommandTimeout,
	}
}

// ConfigFilePath returns the default config file location.
func ConfigFilePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "desktopcli", "config.ini")
}

// LoadConfig reads the ini config file at path over the defaults. A missing
// file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, err
	}

	utils.Verbose("Loaded config from %s", path)

	api := file.Section("api")
	cfg.APISpace.Width = api.Key("width").MustInt(cfg.APISpace.Width)
	cfg.APISpace.Height = api.Key("height").MustInt(cfg.APISpace.Height)

	disp := file.Section("display")
	cfg.Display = disp.Key("name").MustString(cfg.Display)
	cfg.ScreenSpace.Width = disp.Key("width").MustInt(cfg.ScreenSpace.Width)
	cfg.ScreenSpace.Height = disp.Key("height").MustInt(cfg.ScreenSpace.Height)

	timing := file.Section("timing")
	cfg.SettleDelay = time.Duration(timing.Key("settle_ms").MustInt(int(cfg.SettleDelay/time.Millisecond))) * time.Millisecond
	cfg.CommandTimeout = time.Duration(timing.Key("timeout_s").MustInt(int(cfg.CommandTimeout/time.Second))) * time.Second

	input := file.Section("input")
	cfg.TypeDelayMs = input.Key("type_delay_ms").MustInt(cfg.TypeDelayMs)
	cfg.TypeChunkSize = input.Key("type_chunk_size").MustInt(cfg.TypeChunkSize)
	cfg.ClickDelayMs = input.Key("click_delay_ms").MustInt(cfg.ClickDelayMs)

	return cfg, nil
}

// screenSpace resolves the real screen resolution: configured value if set,
// otherwise autodetected from the backend.
func screenSpace(cfg Config, backend display.Backend) (display.Size, error) {
	if cfg.ScreenSpace.Width > 0 && cfg.ScreenSpace.Height > 0 {
		return cfg.ScreenSpace, nil
	}
	return backend.Geometry()
}
