package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(enableCORS bool) (*httptest.Server, string) {
	handler := NewWebSocketHandler(enableCORS)
	server := httptest.NewServer(handler)
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	return server, wsURL
}

func connectWebSocket(t *testing.T, url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "should connect to WebSocket")
	return conn
}

func sendJSONRPCRequest(t *testing.T, conn *websocket.Conn, req JSONRPCRequest) {
	err := conn.WriteJSON(req)
	require.NoError(t, err, "should send request")
}

func readJSONRPCResponse(t *testing.T, conn *websocket.Conn) JSONRPCResponse {
	var resp JSONRPCResponse
	err := conn.ReadJSON(&resp)
	require.NoError(t, err, "should read response")
	return resp
}

func errorCode(t *testing.T, resp JSONRPCResponse) int {
	t.Helper()
	errObj, ok := resp.Error.(map[string]interface{})
	require.True(t, ok, "error should be an object, got %v", resp.Error)
	return int(errObj["code"].(float64))
}

func TestWebSocket_ValidRequest(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	// doctor inspects the local environment only, so it succeeds without a
	// running display
	sendJSONRPCRequest(t, conn, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "doctor",
		ID:      1,
	})
	resp := readJSONRPCResponse(t, conn)

	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, 1, int(resp.ID.(float64)))
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Result)
}

func TestWebSocket_ActionValidationErrorIsAResult(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	// a malformed action is still a JSON-RPC success: the ActionResult
	// carries the failure
	sendJSONRPCRequest(t, conn, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "action",
		Params:  json.RawMessage(`{"action":"mouse_move"}`),
		ID:      2,
	})
	resp := readJSONRPCResponse(t, conn)

	require.Nil(t, resp.Error)
	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, result["success"])
	assert.Contains(t, result["error"], "coordinate")
}

func TestWebSocket_WrongJSONRPCVersion(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	sendJSONRPCRequest(t, conn, JSONRPCRequest{
		JSONRPC: "1.0",
		Method:  "doctor",
		ID:      1,
	})
	resp := readJSONRPCResponse(t, conn)

	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, resp))
}

func TestWebSocket_MissingID(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	sendJSONRPCRequest(t, conn, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "doctor",
	})
	resp := readJSONRPCResponse(t, conn)

	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, resp))
}

func TestWebSocket_MissingMethod(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	sendJSONRPCRequest(t, conn, JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
	})
	resp := readJSONRPCResponse(t, conn)

	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, resp))
}

func TestWebSocket_UnknownMethod(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	sendJSONRPCRequest(t, conn, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "launch_missiles",
		ID:      1,
	})
	resp := readJSONRPCResponse(t, conn)

	assert.Equal(t, ErrCodeMethodNotFound, errorCode(t, resp))
}

func TestWebSocket_MalformedJSON(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	err := conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
	require.NoError(t, err)

	resp := readJSONRPCResponse(t, conn)
	assert.Equal(t, ErrCodeParseError, errorCode(t, resp))
}

func TestWebSocket_BinaryMessageRejected(t *testing.T) {
	server, wsURL := setupTestServer(false)
	defer server.Close()

	conn := connectWebSocket(t, wsURL)
	defer conn.Close()

	err := conn.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0x02})
	require.NoError(t, err)

	resp := readJSONRPCResponse(t, conn)
	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, resp))
}
