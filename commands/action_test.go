package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		req     ActionRequest
		wantErr []string // substrings the error must name
	}{
		{
			name:    "mouse_move without coordinate",
			req:     ActionRequest{Action: ActionMouseMove},
			wantErr: []string{"coordinate", "mouse_move"},
		},
		{
			name:    "left_click_drag without coordinate",
			req:     ActionRequest{Action: ActionLeftClickDrag},
			wantErr: []string{"coordinate", "left_click_drag"},
		},
		{
			name:    "key without text",
			req:     ActionRequest{Action: ActionKey},
			wantErr: []string{"text", "key"},
		},
		{
			name:    "type without text",
			req:     ActionRequest{Action: ActionType},
			wantErr: []string{"text", "type"},
		},
		{
			name:    "hold_key without text",
			req:     ActionRequest{Action: ActionHoldKey, Duration: duration(1)},
			wantErr: []string{"text", "hold_key"},
		},
		{
			name:    "scroll without direction",
			req:     ActionRequest{Action: ActionScroll, ScrollAmount: 3},
			wantErr: []string{"scrollDirection", "scroll"},
		},
		{
			name:    "scroll without amount",
			req:     ActionRequest{Action: ActionScroll, ScrollDirection: ScrollDown},
			wantErr: []string{"scrollAmount", "scroll"},
		},
		{
			name:    "wait without duration",
			req:     ActionRequest{Action: ActionWait},
			wantErr: []string{"duration", "wait"},
		},
		{
			name:    "hold_key without duration",
			req:     ActionRequest{Action: ActionHoldKey, Text: "a"},
			wantErr: []string{"duration", "hold_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := withFakeBackend(t)

			result := ExecuteAction(testConfig(), tt.req)

			assert.False(t, result.Success)
			for _, want := range tt.wantErr {
				assert.Contains(t, result.Error, want)
			}
			assert.Empty(t, fake.calls, "validation failures must be side-effect free")
		})
	}
}

func TestValidate_DurationBounds(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"over limit", 100.5},
	}

	for _, action := range []ActionKind{ActionWait, ActionHoldKey} {
		for _, tt := range tests {
			t.Run(string(action)+"_"+tt.name, func(t *testing.T) {
				fake := withFakeBackend(t)

				result := ExecuteAction(testConfig(), ActionRequest{
					Action:   action,
					Text:     "a",
					Duration: duration(tt.duration),
				})

				assert.False(t, result.Success)
				assert.Contains(t, result.Error, "duration")
				assert.Empty(t, fake.calls, "bound violations must not reach the backend")
			})
		}
	}
}

func TestValidate_DurationAtLimit(t *testing.T) {
	req := ActionRequest{Action: ActionWait, Duration: duration(100)}
	require.NoError(t, req.validate(), "100 seconds is inside the permitted range")
}

func TestValidate_UnknownAction(t *testing.T) {
	fake := withFakeBackend(t)

	result := ExecuteAction(testConfig(), ActionRequest{Action: "fly"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown action")
	assert.Contains(t, result.Error, "fly")
	assert.Empty(t, fake.calls)
}

func TestValidate_UnknownScrollDirection(t *testing.T) {
	fake := withFakeBackend(t)

	result := ExecuteAction(testConfig(), ActionRequest{
		Action:          ActionScroll,
		ScrollDirection: "sideways",
		ScrollAmount:    1,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "sideways")
	assert.Empty(t, fake.calls)
}

func TestValidate_UnknownModifier(t *testing.T) {
	fake := withFakeBackend(t)

	result := ExecuteAction(testConfig(), ActionRequest{
		Action:      ActionLeftClick,
		ModifierKey: "hyper",
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "hyper")
	assert.Empty(t, fake.calls)
}

func TestValidate_ModifierAliases(t *testing.T) {
	req := ActionRequest{Action: ActionLeftClick, ModifierKey: "cmd"}
	require.NoError(t, req.validate())
	assert.Equal(t, "super", req.modifierKeysym(), "cmd maps to the X11 super key")
}

func TestValidate_CoordinateOptionalForClicks(t *testing.T) {
	for _, action := range []ActionKind{
		ActionLeftClick, ActionRightClick, ActionMiddleClick, ActionDoubleClick, ActionTripleClick,
	} {
		req := ActionRequest{Action: action}
		assert.NoError(t, req.validate(), "clicking in place needs no coordinate for %s", action)
	}
}
