package display

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/desktop-next/desktopcli/utils"
)

// DefaultCommandTimeout bounds any single backend command so a wedged X server
// cannot hang an action forever.
const DefaultCommandTimeout = 30 * time.Second

// XdoBackend drives one X11 display through xdotool for input injection and
// scrot/import for capture. It holds no state beyond its configuration; the
// display itself (cursor, focus) is the only mutable resource.
type XdoBackend struct {
	display string // DISPLAY value, e.g. ":1"; empty means inherit environment
	timeout time.Duration
}

// NewXdoBackend returns a backend addressing the given DISPLAY. A zero timeout
// falls back to DefaultCommandTimeout.
func NewXdoBackend(displayName string, timeout time.Duration) *XdoBackend {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &XdoBackend{
		display: displayName,
		timeout: timeout,
	}
}

// Display returns the DISPLAY value this backend addresses.
func (b *XdoBackend) Display() string {
	return b.display
}

// run executes a display utility with the backend's DISPLAY and timeout.
// Commands are built from argument lists only; user-supplied text is always
// passed as a discrete argument after "--", never interpolated into a shell.
func (b *XdoBackend) run(name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = b.commandEnv()

	utils.Verbose("Running %s %s", name, strings.Join(args, " "))
	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return output, fmt.Errorf("%s timed out after %s", name, b.timeout)
	}
	if err != nil {
		return output, fmt.Errorf("%s failed: %v: %s", name, err, strings.TrimSpace(string(output)))
	}

	return output, nil
}

func (b *XdoBackend) commandEnv() []string {
	if b.display == "" {
		return os.Environ()
	}
	return append(os.Environ(), "DISPLAY="+b.display)
}

func (b *XdoBackend) runXdotool(args ...string) ([]byte, error) {
	return b.run("xdotool", args...)
}

func (b *XdoBackend) MoveCursor(x, y int) error {
	_, err := b.runXdotool("mousemove", "--sync", strconv.Itoa(x), strconv.Itoa(y))
	return err
}

func (b *XdoBackend) Click(button Button, repeat int, delayMs int) error {
	args := []string{"click"}
	if repeat > 1 {
		args = append(args, "--repeat", strconv.Itoa(repeat), "--delay", strconv.Itoa(delayMs))
	}
	args = append(args, strconv.Itoa(int(button)))
	_, err := b.runXdotool(args...)
	return err
}

func (b *XdoBackend) ButtonDown(button Button) error {
	_, err := b.runXdotool("mousedown", strconv.Itoa(int(button)))
	return err
}

func (b *XdoBackend) ButtonUp(button Button) error {
	_, err := b.runXdotool("mouseup", strconv.Itoa(int(button)))
	return err
}

func (b *XdoBackend) PressKeys(keySpec string) error {
	_, err := b.runXdotool("key", "--", keySpec)
	return err
}

func (b *XdoBackend) KeyDown(keySpec string) error {
	_, err := b.runXdotool("keydown", "--", keySpec)
	return err
}

func (b *XdoBackend) KeyUp(keySpec string) error {
	_, err := b.runXdotool("keyup", "--", keySpec)
	return err
}

func (b *XdoBackend) TypeText(chunk string, perCharDelayMs int) error {
	_, err := b.runXdotool("type", "--delay", strconv.Itoa(perCharDelayMs), "--", chunk)
	return err
}

func (b *XdoBackend) Scroll(button Button, repeat int) error {
	_, err := b.runXdotool("click", "--repeat", strconv.Itoa(repeat), strconv.Itoa(int(button)))
	return err
}

func (b *XdoBackend) CursorPosition() (int, int, error) {
	output, err := b.runXdotool("getmouselocation", "--shell")
	if err != nil {
		return 0, 0, err
	}

	return parseMouseLocation(string(output))
}

// parseMouseLocation reads `xdotool getmouselocation --shell` output:
//
//	X=960
//	Y=540
//	SCREEN=0
//	WINDOW=1234
func parseMouseLocation(output string) (int, int, error) {
	x, y := -1, -1
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(line, "X="); ok {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid X in mouse location %q: %v", line, err)
			}
			x = parsed
		} else if value, ok := strings.CutPrefix(line, "Y="); ok {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid Y in mouse location %q: %v", line, err)
			}
			y = parsed
		}
	}

	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("mouse location missing X/Y: %q", strings.TrimSpace(output))
	}

	return x, y, nil
}
