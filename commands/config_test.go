package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIWidth, cfg.APISpace.Width)
	assert.Equal(t, DefaultAPIHeight, cfg.APISpace.Height)
	assert.Equal(t, DefaultSettleDelay, cfg.SettleDelay)
	assert.Equal(t, DefaultTypeChunkSize, cfg.TypeChunkSize)
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIWidth, cfg.APISpace.Width)
}

func TestLoadConfig_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := `
[api]
width = 1024
height = 768

[display]
name = :1
width = 1920
height = 1080

[timing]
settle_ms = 250
timeout_s = 10

[input]
type_delay_ms = 5
type_chunk_size = 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.APISpace.Width)
	assert.Equal(t, 768, cfg.APISpace.Height)
	assert.Equal(t, ":1", cfg.Display)
	assert.Equal(t, 1920, cfg.ScreenSpace.Width)
	assert.Equal(t, 1080, cfg.ScreenSpace.Height)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 10*time.Second, cfg.CommandTimeout)
	assert.Equal(t, 5, cfg.TypeDelayMs)
	assert.Equal(t, 25, cfg.TypeChunkSize)
}

func TestLoadConfig_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nname = :99\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":99", cfg.Display)
	assert.Equal(t, DefaultAPIWidth, cfg.APISpace.Width)
	assert.Equal(t, DefaultTypeDelayMs, cfg.TypeDelayMs)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[unterminated\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
