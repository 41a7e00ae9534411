package commands

import (
	"github.com/desktop-next/desktopcli/display"
)

// DisplayInfo describes the display target and the two coordinate spaces in
// play for it.
type DisplayInfo struct {
	Display     string       `json:"display"`
	APISpace    display.Size `json:"apiSpace"`
	ScreenSpace display.Size `json:"screenSpace"`
	Detected    bool         `json:"detected"` // true when screen size came from the backend
}

// DisplayInfoCommand reports the configured display target, resolving the
// screen size from the backend when it is not configured.
func DisplayInfoCommand(cfg Config) (*DisplayInfo, error) {
	info := &DisplayInfo{
		Display:     cfg.Display,
		APISpace:    cfg.APISpace,
		ScreenSpace: cfg.ScreenSpace,
	}

	if cfg.ScreenSpace.Width == 0 || cfg.ScreenSpace.Height == 0 {
		size, err := backendFor(cfg).Geometry()
		if err != nil {
			return nil, err
		}
		info.ScreenSpace = size
		info.Detected = true
	}

	return info, nil
}
