package commands

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/desktop-next/desktopcli/display"
	"github.com/desktop-next/desktopcli/utils"
)

// ExecuteAction runs one action against the display and returns a uniform
// result. It never panics and never lets an error escape: every failure is
// reported as ActionResult{Success:false, Error:...}. Validation happens
// before any input is injected, so a malformed request has no side effects.
func ExecuteAction(cfg Config, req ActionRequest) *ActionResult {
	if err := req.validate(); err != nil {
		return NewErrorResult(err)
	}

	if req.Display != "" {
		cfg.Display = req.Display
	}

	backend := backendFor(cfg)

	switch req.Action {
	case ActionScreenshot:
		return takeScreenshot(cfg, backend)

	case ActionCursorPosition:
		return cursorPosition(cfg, backend)

	case ActionMouseMove:
		return executeMouseMove(cfg, backend, req)

	case ActionLeftClick, ActionRightClick, ActionMiddleClick, ActionDoubleClick, ActionTripleClick:
		return executeClick(cfg, backend, req)

	case ActionLeftClickDrag:
		return executeDrag(cfg, backend, req)

	case ActionLeftMouseDown:
		if err := backend.ButtonDown(display.ButtonLeft); err != nil {
			return NewErrorResult(err)
		}
		return observe(cfg, backend, "pressed left button")

	case ActionLeftMouseUp:
		if err := backend.ButtonUp(display.ButtonLeft); err != nil {
			return NewErrorResult(err)
		}
		return observe(cfg, backend, "released left button")

	case ActionKey:
		if err := backend.PressKeys(req.Text); err != nil {
			return NewErrorResult(err)
		}
		return observe(cfg, backend, fmt.Sprintf("pressed key %q", req.Text))

	case ActionType:
		return executeType(cfg, backend, req)

	case ActionScroll:
		return executeScroll(cfg, backend, req)

	case ActionWait:
		time.Sleep(secondsToDuration(*req.Duration))
		return observe(cfg, backend, fmt.Sprintf("waited %gs", *req.Duration))

	case ActionHoldKey:
		return executeHoldKey(cfg, backend, req)

	default:
		// validate() already rejects unknown kinds; kept for safety
		return NewErrorResult(fmt.Errorf("unknown action: %s", req.Action))
	}
}

func executeMouseMove(cfg Config, backend display.Backend, req ActionRequest) *ActionResult {
	screen, err := screenSpace(cfg, backend)
	if err != nil {
		return NewErrorResult(err)
	}

	x, y := display.ToScreen(req.Coordinate.X, req.Coordinate.Y, cfg.APISpace, screen)
	if err := backend.MoveCursor(x, y); err != nil {
		return NewErrorResult(err)
	}

	return observe(cfg, backend, fmt.Sprintf("moved cursor to (%d,%d)", req.Coordinate.X, req.Coordinate.Y))
}

// clickButtons maps the click action kinds to their button and repeat count.
var clickButtons = map[ActionKind]struct {
	button display.Button
	repeat int
}{
	ActionLeftClick:   {display.ButtonLeft, 1},
	ActionRightClick:  {display.ButtonRight, 1},
	ActionMiddleClick: {display.ButtonMiddle, 1},
	ActionDoubleClick: {display.ButtonLeft, 2},
	ActionTripleClick: {display.ButtonLeft, 3},
}

func executeClick(cfg Config, backend display.Backend, req ActionRequest) *ActionResult {
	if req.Coordinate != nil {
		screen, err := screenSpace(cfg, backend)
		if err != nil {
			return NewErrorResult(err)
		}
		x, y := display.ToScreen(req.Coordinate.X, req.Coordinate.Y, cfg.APISpace, screen)
		if err := backend.MoveCursor(x, y); err != nil {
			return NewErrorResult(err)
		}
	}

	click := clickButtons[req.Action]
	err := withModifier(backend, req.modifierKeysym(), func() error {
		return backend.Click(click.button, click.repeat, cfg.ClickDelayMs)
	})
	if err != nil {
		return NewErrorResult(err)
	}

	return observe(cfg, backend, string(req.Action))
}

func executeDrag(cfg Config, backend display.Backend, req ActionRequest) *ActionResult {
	screen, err := screenSpace(cfg, backend)
	if err != nil {
		return NewErrorResult(err)
	}

	// the drag starts wherever the cursor currently is
	fromX, fromY, err := backend.CursorPosition()
	if err != nil {
		return NewErrorResult(err)
	}

	toX, toY := display.ToScreen(req.Coordinate.X, req.Coordinate.Y, cfg.APISpace, screen)

	if err := backend.ButtonDown(display.ButtonLeft); err != nil {
		return NewErrorResult(err)
	}
	if err := backend.MoveCursor(toX, toY); err != nil {
		// pointer state cannot be rolled back; report the whole action failed
		return NewErrorResult(err)
	}
	if err := backend.ButtonUp(display.ButtonLeft); err != nil {
		return NewErrorResult(err)
	}

	return observe(cfg, backend, fmt.Sprintf("dragged from (%d,%d) to (%d,%d)", fromX, fromY, toX, toY))
}

func executeType(cfg Config, backend display.Backend, req ActionRequest) *ActionResult {
	// long strings are injected in bounded chunks so a single backend call
	// never exceeds what the injection utility handles reliably
	for _, chunk := range chunkText(req.Text, cfg.TypeChunkSize) {
		if err := backend.TypeText(chunk, cfg.TypeDelayMs); err != nil {
			return NewErrorResult(err)
		}
	}

	return observe(cfg, backend, fmt.Sprintf("typed %d characters", len([]rune(req.Text))))
}

// wheelButtons maps scroll directions to X11 wheel button codes.
var wheelButtons = map[ScrollDirection]display.Button{
	ScrollUp:    display.WheelUp,
	ScrollDown:  display.WheelDown,
	ScrollLeft:  display.WheelLeft,
	ScrollRight: display.WheelRight,
}

func executeScroll(cfg Config, backend display.Backend, req ActionRequest) *ActionResult {
	if req.Coordinate != nil {
		screen, err := screenSpace(cfg, backend)
		if err != nil {
			return NewErrorResult(err)
		}
		x, y := display.ToScreen(req.Coordinate.X, req.Coordinate.Y, cfg.APISpace, screen)
		if err := backend.MoveCursor(x, y); err != nil {
			return NewErrorResult(err)
		}
	}

	err := withModifier(backend, req.modifierKeysym(), func() error {
		return backend.Scroll(wheelButtons[req.ScrollDirection], req.ScrollAmount)
	})
	if err != nil {
		return NewErrorResult(err)
	}

	return observe(cfg, backend, fmt.Sprintf("scrolled %s by %d", req.ScrollDirection, req.ScrollAmount))
}

func executeHoldKey(cfg Config, backend display.Backend, req ActionRequest) *ActionResult {
	if err := backend.KeyDown(req.Text); err != nil {
		return NewErrorResult(err)
	}

	time.Sleep(secondsToDuration(*req.Duration))

	if err := backend.KeyUp(req.Text); err != nil {
		return NewErrorResult(err)
	}

	return observe(cfg, backend, fmt.Sprintf("held %q for %gs", req.Text, *req.Duration))
}

func cursorPosition(cfg Config, backend display.Backend) *ActionResult {
	screen, err := screenSpace(cfg, backend)
	if err != nil {
		return NewErrorResult(err)
	}

	x, y, err := backend.CursorPosition()
	if err != nil {
		return NewErrorResult(err)
	}

	apiX, apiY := display.ToAPI(x, y, cfg.APISpace, screen)
	return &ActionResult{
		Success:        true,
		CursorPosition: &Point{X: apiX, Y: apiY},
	}
}

// takeScreenshot captures immediately; it is the action itself, so no settle
// delay applies.
func takeScreenshot(cfg Config, backend display.Backend) *ActionResult {
	pngBytes, err := backend.CaptureScreen(cfg.APISpace.Width, cfg.APISpace.Height)
	if err != nil {
		return NewErrorResult(err)
	}

	return &ActionResult{
		Success:    true,
		Screenshot: base64.StdEncoding.EncodeToString(pngBytes),
	}
}

// observe waits for the compositor to settle, then attaches a fresh screenshot
// to a successful result so the agent always sees the display state its action
// produced. A capture failure fails the whole action.
func observe(cfg Config, backend display.Backend, output string) *ActionResult {
	time.Sleep(cfg.SettleDelay)

	pngBytes, err := backend.CaptureScreen(cfg.APISpace.Width, cfg.APISpace.Height)
	if err != nil {
		return NewErrorResult(fmt.Errorf("action completed but screenshot failed: %v", err))
	}

	return &ActionResult{
		Success:    true,
		Output:     output,
		Screenshot: base64.StdEncoding.EncodeToString(pngBytes),
	}
}

// withModifier brackets fn between keydown and keyup of the modifier, and
// always releases it, so a failed click can never leave a modifier held for
// later actions sharing the display.
func withModifier(backend display.Backend, keysym string, fn func() error) error {
	if keysym == "" {
		return fn()
	}

	if err := backend.KeyDown(keysym); err != nil {
		return err
	}

	fnErr := fn()
	if err := backend.KeyUp(keysym); err != nil {
		utils.Warn("Failed to release modifier %s: %v", keysym, err)
		if fnErr == nil {
			return err
		}
	}

	return fnErr
}

// chunkText splits text into rune-aligned chunks of at most size characters.
// Concatenating the chunks in order reproduces the input exactly.
func chunkText(text string, size int) []string {
	if size <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
