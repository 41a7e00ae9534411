package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func makeTestPng(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestConvertPngToJpeg(t *testing.T) {
	w := 32
	h := 32
	pngBytes := makeTestPng(t, w, h)

	jpegBytes, err := ConvertPngToJpeg(pngBytes, 90)
	if err != nil {
		t.Errorf("ConvertPngToJpeg() error = %v", err)
	}

	out, err := jpeg.Decode(bytes.NewReader(jpegBytes))
	if err != nil {
		t.Errorf("Output is not valid JPEG: %v", err)
	}

	if out.Bounds().Dx() != w || out.Bounds().Dy() != h {
		t.Errorf("Output is not %dx%d: %v", w, h, out.Bounds())
	}
}

func TestConvertPngToJpeg_InvalidInput(t *testing.T) {
	_, err := ConvertPngToJpeg([]byte("not a png"), 90)
	if err == nil {
		t.Error("expected error for invalid PNG input")
	}
}

func TestResizePng(t *testing.T) {
	pngBytes := makeTestPng(t, 64, 48)

	resized, err := ResizePng(pngBytes, 32, 24)
	if err != nil {
		t.Fatalf("ResizePng() error = %v", err)
	}

	out, err := png.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("Output is not valid PNG: %v", err)
	}

	if out.Bounds().Dx() != 32 || out.Bounds().Dy() != 24 {
		t.Errorf("Output is not 32x24: %v", out.Bounds())
	}
}

func TestResizePng_NoopWhenSameSize(t *testing.T) {
	pngBytes := makeTestPng(t, 16, 16)

	resized, err := ResizePng(pngBytes, 16, 16)
	if err != nil {
		t.Fatalf("ResizePng() error = %v", err)
	}

	if !bytes.Equal(resized, pngBytes) {
		t.Error("expected same-size resize to return input unchanged")
	}
}

func TestResizePng_AspectRatioNotPreserved(t *testing.T) {
	// both axes scale independently, matching the coordinate mapper
	pngBytes := makeTestPng(t, 40, 40)

	resized, err := ResizePng(pngBytes, 20, 10)
	if err != nil {
		t.Fatalf("ResizePng() error = %v", err)
	}

	out, err := png.Decode(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("Output is not valid PNG: %v", err)
	}

	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 10 {
		t.Errorf("Output is not 20x10: %v", out.Bounds())
	}
}
