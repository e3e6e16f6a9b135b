package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "PriceNexus", cfg.Name)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Bridge.SearchModel)
	assert.Equal(t, 60*time.Second, cfg.GetBridgeTimeout())
	assert.False(t, cfg.BridgeConfigured())
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bridge:
  api_key: file-key
  timeout: 10s
logging:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Bridge.APIKey)
	assert.Equal(t, 10*time.Second, cfg.GetBridgeTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep defaults.
	assert.Equal(t, "gemini-3-pro-preview", cfg.Bridge.ChatModel)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bridge:\n  api_key: file-key\n"), 0644))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("NEXUS_FIREBASE_API_KEY", "fb-key")
	t.Setenv("NEXUS_DEBUG", "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Bridge.APIKey)
	assert.Equal(t, "fb-key", cfg.Auth.APIKey)
	assert.True(t, cfg.AuthConfigured())
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "nexus.yaml")
	cfg := DefaultConfig()
	cfg.Bridge.APIKey = "saved-key"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.Bridge.APIKey)
}

func TestBadDurationFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chat.Timeout = "not-a-duration"
	assert.Equal(t, 30*time.Second, cfg.GetChatTimeout())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Bridge.ChatModel = ""
	assert.Error(t, cfg.Validate())
}
