package commands

import (
	"sync"

	"github.com/desktop-next/desktopcli/display"
)

// Point is a coordinate pair in API space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActionResult is the uniform result of every action. Success=false implies
// Error is set and every other optional field is empty; Success=true implies
// Error is empty.
type ActionResult struct {
	Success        bool   `json:"success"`
	Screenshot     string `json:"screenshot,omitempty"` // base64-encoded PNG
	CursorPosition *Point `json:"cursorPosition,omitempty"`
	Output         string `json:"output,omitempty"`
	Error          string `json:"error,omitempty"`
}

// NewErrorResult creates a failed result from an error.
func NewErrorResult(err error) *ActionResult {
	return &ActionResult{
		Error: err.Error(),
	}
}

// backendFactory builds the display backend for a config. Package tests swap
// it for a recording fake; everything else gets the xdotool implementation.
var backendFactory func(cfg Config) display.Backend = func(cfg Config) display.Backend {
	return display.NewXdoBackend(cfg.Display, cfg.CommandTimeout)
}

var (
	backendMu sync.Mutex
	backends  = make(map[string]display.Backend)
)

// backendFor returns a backend for the config's display target, reusing one
// instance per display name. Backends are stateless, this just avoids
// rebuilding them on every action.
func backendFor(cfg Config) display.Backend {
	backendMu.Lock()
	defer backendMu.Unlock()

	if b, ok := backends[cfg.Display]; ok {
		return b
	}

	b := backendFactory(cfg)
	backends[cfg.Display] = b
	return b
}

// resetBackends clears cached backends. Tests use it when swapping factories.
func resetBackends() {
	backendMu.Lock()
	defer backendMu.Unlock()
	backends = make(map[string]display.Backend)
}
