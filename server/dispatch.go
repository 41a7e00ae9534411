package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/desktop-next/desktopcli/commands"
	"github.com/desktop-next/desktopcli/utils"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions.
// This is used by both the HTTP endpoint and the WebSocket endpoint.
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"action":          handleAction,
		"screenshot":      handleScreenshot,
		"cursor_position": handleCursorPosition,
		"display_info":    handleDisplayInfo,
		"doctor":          handleDoctor,
		"server.shutdown": handleShutdown,
	}
}

// Execute dispatches a method call using the registry.
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(params)
}

// handleAction runs one ActionRequest. The ActionResult is always a JSON-RPC
// result, including failed actions: the success/error contract belongs to the
// action layer, transport errors belong to JSON-RPC.
func handleAction(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with field: action")
	}

	var req commands.ActionRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected an action request", err)
	}

	return commands.ExecuteAction(serverConfig, req), nil
}

type ScreenshotParams struct {
	Format  string `json:"format,omitempty"`  // "png" or "jpeg"
	Quality int    `json:"quality,omitempty"` // 1-100, only used for JPEG
	Native  bool   `json:"native,omitempty"`
}

func handleScreenshot(params json.RawMessage) (interface{}, error) {
	var screenshotParams ScreenshotParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &screenshotParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v", err)
		}
	}

	response, err := commands.ScreenshotCommand(serverConfig, commands.ScreenshotRequest{
		Format:     screenshotParams.Format,
		Quality:    screenshotParams.Quality,
		Native:     screenshotParams.Native,
		OutputPath: "-", // always return base64 data for server
	})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"format": response.Format,
		"data":   fmt.Sprintf("data:image/%s;base64,%s", response.Format, response.Data),
	}, nil
}

func handleCursorPosition(params json.RawMessage) (interface{}, error) {
	result := commands.ExecuteAction(serverConfig, commands.ActionRequest{
		Action: commands.ActionCursorPosition,
	})
	if !result.Success {
		return nil, fmt.Errorf("%s", result.Error)
	}

	return result.CursorPosition, nil
}

func handleDisplayInfo(params json.RawMessage) (interface{}, error) {
	info, err := commands.DisplayInfoCommand(serverConfig)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func handleDoctor(params json.RawMessage) (interface{}, error) {
	return commands.DoctorCommand(serverConfig, Version), nil
}

// handleShutdown acknowledges the request, then stops the server once the
// response has gone out.
func handleShutdown(params json.RawMessage) (interface{}, error) {
	utils.Info("Shutdown requested via JSON-RPC")

	stop := shutdownServer
	if stop == nil {
		return nil, fmt.Errorf("server is not running")
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		stop()
	}()

	return map[string]interface{}{"status": "ok"}, nil
}
