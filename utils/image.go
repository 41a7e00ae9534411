package utils

import (
	"bytes"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

func ConvertPngToJpeg(pngBytes []byte, quality int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}

	var jpegBytes bytes.Buffer
	if err := jpeg.Encode(&jpegBytes, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}

	return jpegBytes.Bytes(), nil
}

// ResizePng scales a PNG to exactly width x height. Aspect ratio is not
// preserved: coordinate mapping relies on both axes scaling independently,
// the same way the screenshot is presented to the agent.
func ResizePng(pngBytes []byte, width, height int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return pngBytes, nil
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)

	var out bytes.Buffer
	if err := png.Encode(&out, scaled); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
