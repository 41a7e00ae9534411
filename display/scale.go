package display

import "math"

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ToScreen converts a point from API space (the fixed logical resolution the
// agent reasons in, e.g. 1280x800) to the actual screen resolution. Both axes
// scale independently, so aspect-ratio mismatches are absorbed by the same
// proportional factors used when the screenshot is resized down to API space.
func ToScreen(x, y int, api, screen Size) (int, int) {
	sx := int(math.Round(float64(x) / float64(api.Width) * float64(screen.Width)))
	sy := int(math.Round(float64(y) / float64(api.Height) * float64(screen.Height)))
	return sx, sy
}

// ToAPI is the inverse of ToScreen. It converts a real screen-space point back
// into API space, used when reporting cursor position so the caller's
// coordinate frame never depends on the backend resolution.
func ToAPI(x, y int, api, screen Size) (int, int) {
	ax := int(math.Round(float64(x) / float64(screen.Width) * float64(api.Width)))
	ay := int(math.Round(float64(y) / float64(screen.Height) * float64(api.Height)))
	return ax, ay
}
