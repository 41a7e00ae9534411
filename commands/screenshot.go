package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desktop-next/desktopcli/utils"
)

// ScreenshotRequest represents the parameters for taking a screenshot from the
// CLI or server, where output format and destination matter.
type ScreenshotRequest struct {
	Format     string `json:"format,omitempty"`     // "png" or "jpeg"
	Quality    int    `json:"quality,omitempty"`    // 1-100, only used for JPEG
	OutputPath string `json:"outputPath,omitempty"` // file path, "-" for base64, empty for default naming
	Native     bool   `json:"native,omitempty"`     // capture at screen resolution instead of API space
}

// ScreenshotResponse represents the response for a screenshot command.
type ScreenshotResponse struct {
	Format   string `json:"format"`
	Data     string `json:"data,omitempty"`     // base64 encoded image data
	FilePath string `json:"filePath,omitempty"` // path where file was saved
}

// ScreenshotCommand captures the display and writes or returns the image.
func ScreenshotCommand(cfg Config, req ScreenshotRequest) (*ScreenshotResponse, error) {
	if req.Format == "" {
		req.Format = "png"
	}

	req.Format = strings.ToLower(req.Format)
	if req.Format != "png" && req.Format != "jpeg" {
		return nil, fmt.Errorf("invalid format '%s'. Supported formats are 'png' and 'jpeg'", req.Format)
	}

	if req.Format == "jpeg" {
		if req.Quality < 1 || req.Quality > 100 {
			req.Quality = 90
		}
	}

	backend := backendFor(cfg)

	targetWidth, targetHeight := cfg.APISpace.Width, cfg.APISpace.Height
	if req.Native {
		targetWidth, targetHeight = 0, 0
	}

	imageBytes, err := backend.CaptureScreen(targetWidth, targetHeight)
	if err != nil {
		return nil, fmt.Errorf("error taking screenshot: %v", err)
	}

	if req.Format == "jpeg" {
		imageBytes, err = utils.ConvertPngToJpeg(imageBytes, req.Quality)
		if err != nil {
			return nil, fmt.Errorf("error converting to JPEG: %v", err)
		}
	}

	response := &ScreenshotResponse{
		Format: req.Format,
	}

	if req.OutputPath == "-" {
		response.Data = base64.StdEncoding.EncodeToString(imageBytes)
		return response, nil
	}

	finalPath := req.OutputPath
	if finalPath == "" {
		timestamp := time.Now().Format("20060102150405")
		extension := "png"
		if req.Format == "jpeg" {
			extension = "jpg"
		}
		finalPath = fmt.Sprintf("screenshot-%s.%s", timestamp, extension)
	}

	finalPath, err = filepath.Abs(finalPath)
	if err != nil {
		return nil, fmt.Errorf("invalid output path: %v", err)
	}

	if err := os.WriteFile(finalPath, imageBytes, 0o600); err != nil {
		return nil, fmt.Errorf("error writing file: %v", err)
	}

	response.FilePath = finalPath
	return response, nil
}
