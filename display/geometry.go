package display

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// A virtual framebuffer never changes resolution mid-session, so geometry is
// looked up once per display and cached. The cache is tiny; the LRU bound only
// guards against a caller cycling through many display names.
var geometryCache, _ = lru.New[string, Size](8)

var dimensionsRe = regexp.MustCompile(`dimensions:\s+(\d+)x(\d+)\s+pixels`)

// Geometry reports the display's native resolution via xdpyinfo.
func (b *XdoBackend) Geometry() (Size, error) {
	if size, ok := geometryCache.Get(b.display); ok {
		return size, nil
	}

	output, err := b.run("xdpyinfo")
	if err != nil {
		return Size{}, err
	}

	size, err := parseGeometry(string(output))
	if err != nil {
		return Size{}, err
	}

	geometryCache.Add(b.display, size)
	return size, nil
}

// parseGeometry extracts the screen dimensions from xdpyinfo output,
// e.g. "  dimensions:    1920x1080 pixels (508x285 millimeters)".
func parseGeometry(output string) (Size, error) {
	match := dimensionsRe.FindStringSubmatch(output)
	if match == nil {
		return Size{}, fmt.Errorf("no dimensions line in xdpyinfo output (%d bytes)", len(strings.TrimSpace(output)))
	}

	width, err := strconv.Atoi(match[1])
	if err != nil {
		return Size{}, fmt.Errorf("invalid width %q: %v", match[1], err)
	}
	height, err := strconv.Atoi(match[2])
	if err != nil {
		return Size{}, fmt.Errorf("invalid height %q: %v", match[2], err)
	}

	return Size{Width: width, Height: height}, nil
}
