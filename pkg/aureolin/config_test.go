package aureolin

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.Host)
	assert.True(t, cfg.Body.JSON)
	assert.True(t, cfg.Body.Form)
	assert.True(t, cfg.Body.Text)
	assert.True(t, cfg.Logger.Enabled)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestDefaultConfig_PortFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg := DefaultConfig()
	assert.Equal(t, 3000, cfg.Port)
}

func TestDefaultConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	cfg := DefaultConfig()
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	content := `
port = 9090
host = "127.0.0.1"

[body]
json = true
form = false
text = false

[logger]
enabled = false
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.True(t, cfg.Body.JSON)
	assert.False(t, cfg.Body.Form)
	assert.False(t, cfg.Logger.Enabled)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
