package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	apiSpace    = Size{Width: 1280, Height: 800}
	screenSpace = Size{Width: 1920, Height: 1080}
)

func TestToScreen(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"origin", 0, 0, 0, 0},
		{"center", 640, 400, 960, 540},
		{"bottom right", 1280, 800, 1920, 1080},
		{"arbitrary", 100, 50, 150, 68}, // 50/800*1080 = 67.5 rounds up
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := ToScreen(tt.x, tt.y, apiSpace, screenSpace)
			assert.Equal(t, tt.wantX, gotX)
			assert.Equal(t, tt.wantY, gotY)
		})
	}
}

func TestToAPI(t *testing.T) {
	gotX, gotY := ToAPI(960, 540, apiSpace, screenSpace)
	assert.Equal(t, 640, gotX)
	assert.Equal(t, 400, gotY)
}

func TestToScreen_IdentityWhenSpacesMatch(t *testing.T) {
	size := Size{Width: 1024, Height: 768}
	x, y := ToScreen(123, 456, size, size)
	assert.Equal(t, 123, x)
	assert.Equal(t, 456, y)
}

func TestRoundTrip(t *testing.T) {
	// mapping to screen space and back loses at most one unit to rounding
	for x := 0; x <= apiSpace.Width; x += 17 {
		for y := 0; y <= apiSpace.Height; y += 13 {
			sx, sy := ToScreen(x, y, apiSpace, screenSpace)
			ax, ay := ToAPI(sx, sy, apiSpace, screenSpace)
			assert.InDelta(t, x, ax, 1, "x round-trip at (%d,%d)", x, y)
			assert.InDelta(t, y, ay, 1, "y round-trip at (%d,%d)", x, y)
		}
	}
}

func TestRoundTrip_Downscaling(t *testing.T) {
	// screen smaller than API space
	small := Size{Width: 800, Height: 600}
	for x := 0; x <= apiSpace.Width; x += 31 {
		for y := 0; y <= apiSpace.Height; y += 29 {
			sx, sy := ToScreen(x, y, apiSpace, small)
			ax, ay := ToAPI(sx, sy, apiSpace, small)
			assert.InDelta(t, x, ax, 1)
			assert.InDelta(t, y, ay, 1)
		}
	}
}
