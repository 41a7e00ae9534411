package display

// Button identifies a pointer button using X11 button numbering. Buttons 4-7
// are the scroll wheel "clicks" in the four directions.
type Button int

const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3

	WheelUp    Button = 4
	WheelDown  Button = 5
	WheelLeft  Button = 6
	WheelRight Button = 7
)

// Backend is the capability a single virtual/remote display exposes to the
// action executor: input injection, cursor query, and screen capture. The
// concrete implementation shells out to X11 utilities; tests substitute a
// recording fake.
type Backend interface {
	MoveCursor(x, y int) error
	Click(button Button, repeat int, delayMs int) error
	ButtonDown(button Button) error
	ButtonUp(button Button) error

	// PressKeys injects a key or key combo given as an xdotool keysym spec,
	// e.g. "Return" or "ctrl+shift+t".
	PressKeys(keySpec string) error
	KeyDown(keySpec string) error
	KeyUp(keySpec string) error

	// TypeText injects a chunk of literal text with a fixed delay between
	// characters. Callers are responsible for chunking long strings.
	TypeText(chunk string, perCharDelayMs int) error

	// Scroll issues repeat wheel clicks of the given wheel button.
	Scroll(button Button, repeat int) error

	// CursorPosition returns the pointer location in real screen space.
	CursorPosition() (int, int, error)

	// CaptureScreen grabs the full screen and returns it as PNG bytes resized
	// to targetWidth x targetHeight. Zero target dimensions keep the native
	// resolution.
	CaptureScreen(targetWidth, targetHeight int) ([]byte, error)

	// Geometry reports the display's native resolution.
	Geometry() (Size, error)
}
