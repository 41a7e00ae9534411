package commands

import (
	"fmt"
)

// ActionKind names one of the sixteen request types the executor accepts.
type ActionKind string

const (
	ActionScreenshot     ActionKind = "screenshot"
	ActionMouseMove      ActionKind = "mouse_move"
	ActionLeftClick      ActionKind = "left_click"
	ActionRightClick     ActionKind = "right_click"
	ActionMiddleClick    ActionKind = "middle_click"
	ActionDoubleClick    ActionKind = "double_click"
	ActionTripleClick    ActionKind = "triple_click"
	ActionLeftClickDrag  ActionKind = "left_click_drag"
	ActionLeftMouseDown  ActionKind = "left_mouse_down"
	ActionLeftMouseUp    ActionKind = "left_mouse_up"
	ActionKey            ActionKind = "key"
	ActionType           ActionKind = "type"
	ActionCursorPosition ActionKind = "cursor_position"
	ActionScroll         ActionKind = "scroll"
	ActionWait           ActionKind = "wait"
	ActionHoldKey        ActionKind = "hold_key"
)

// ScrollDirection is the wheel direction for scroll actions.
type ScrollDirection string

const (
	ScrollUp    ScrollDirection = "up"
	ScrollDown  ScrollDirection = "down"
	ScrollLeft  ScrollDirection = "left"
	ScrollRight ScrollDirection = "right"
)

// maxDurationSeconds bounds wait/hold_key so a single action cannot stall the
// agent loop indefinitely.
const maxDurationSeconds = 100.0

// ActionRequest is a single action against the remote display. Coordinate is
// always in API space. Pointer fields distinguish "absent" from zero values.
type ActionRequest struct {
	Action          ActionKind      `json:"action"`
	Coordinate      *Point          `json:"coordinate,omitempty"`
	Text            string          `json:"text,omitempty"`
	ScrollDirection ScrollDirection `json:"scrollDirection,omitempty"`
	ScrollAmount    int             `json:"scrollAmount,omitempty"`
	Duration        *float64        `json:"duration,omitempty"` // seconds
	ModifierKey     string          `json:"modifierKey,omitempty"`

	// Display overrides the configured display target for this action only.
	Display string `json:"display,omitempty"`
}

// modifierKeysyms maps caller-facing modifier names to xdotool keysyms.
var modifierKeysyms = map[string]string{
	"ctrl":  "ctrl",
	"shift": "shift",
	"alt":   "alt",
	"super": "super",
	"cmd":   "super",
	"win":   "super",
}

// validate enforces the per-kind required fields and bounds before any side
// effect is issued. Errors always name the offending field and the action.
func (req *ActionRequest) validate() error {
	switch req.Action {
	case ActionScreenshot, ActionCursorPosition, ActionLeftMouseDown, ActionLeftMouseUp:
		return nil

	case ActionMouseMove, ActionLeftClickDrag:
		if req.Coordinate == nil {
			return fmt.Errorf("coordinate is required for %s", req.Action)
		}
		return nil

	case ActionLeftClick, ActionRightClick, ActionMiddleClick, ActionDoubleClick, ActionTripleClick:
		// coordinate is optional; clicking in place is valid
		return req.validateModifier()

	case ActionKey, ActionType:
		if req.Text == "" {
			return fmt.Errorf("text is required for %s", req.Action)
		}
		return nil

	case ActionScroll:
		if req.ScrollDirection == "" {
			return fmt.Errorf("scrollDirection is required for scroll")
		}
		switch req.ScrollDirection {
		case ScrollUp, ScrollDown, ScrollLeft, ScrollRight:
		default:
			return fmt.Errorf("scrollDirection must be up, down, left or right, got %q", req.ScrollDirection)
		}
		if req.ScrollAmount <= 0 {
			return fmt.Errorf("scrollAmount must be a positive integer for scroll")
		}
		return req.validateModifier()

	case ActionWait:
		return req.validateDuration()

	case ActionHoldKey:
		if req.Text == "" {
			return fmt.Errorf("text is required for hold_key")
		}
		return req.validateDuration()

	default:
		return fmt.Errorf("unknown action: %s", req.Action)
	}
}

func (req *ActionRequest) validateDuration() error {
	if req.Duration == nil {
		return fmt.Errorf("duration is required for %s", req.Action)
	}
	if *req.Duration <= 0 {
		return fmt.Errorf("duration must be greater than 0 for %s", req.Action)
	}
	if *req.Duration > maxDurationSeconds {
		return fmt.Errorf("duration must be at most %v seconds for %s", maxDurationSeconds, req.Action)
	}
	return nil
}

func (req *ActionRequest) validateModifier() error {
	if req.ModifierKey == "" {
		return nil
	}
	if _, ok := modifierKeysyms[req.ModifierKey]; !ok {
		return fmt.Errorf("unknown modifierKey %q, expected one of ctrl, shift, alt, super, cmd, win", req.ModifierKey)
	}
	return nil
}

func (req *ActionRequest) modifierKeysym() string {
	return modifierKeysyms[req.ModifierKey]
}
