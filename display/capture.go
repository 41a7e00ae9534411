package display

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/desktop-next/desktopcli/utils"
)

// CaptureScreen grabs the full display into a uniquely-named temporary file,
// reads it back, and optionally resizes to the target dimensions. The temp
// file is removed on every exit path so sustained use cannot accumulate files,
// and the uuid name keeps concurrent captures from colliding.
func (b *XdoBackend) CaptureScreen(targetWidth, targetHeight int) ([]byte, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("desktopcli-%s.png", uuid.NewString()))
	defer os.Remove(path)

	if err := b.captureToFile(path); err != nil {
		return nil, err
	}

	pngBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read captured screenshot: %v", err)
	}

	if targetWidth > 0 && targetHeight > 0 {
		pngBytes, err = utils.ResizePng(pngBytes, targetWidth, targetHeight)
		if err != nil {
			return nil, fmt.Errorf("failed to resize screenshot: %v", err)
		}
	}

	return pngBytes, nil
}

// captureToFile runs the first available capture utility. scrot is preferred;
// ImageMagick's import is the fallback on hosts without it.
func (b *XdoBackend) captureToFile(path string) error {
	if _, err := exec.LookPath("scrot"); err == nil {
		_, err := b.run("scrot", "-z", "-o", path)
		return err
	}

	if _, err := exec.LookPath("import"); err == nil {
		_, err := b.run("import", "-window", "root", path)
		return err
	}

	return fmt.Errorf("no screen capture utility found, install scrot or imagemagick")
}
