package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-mclib/mcserver/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `address = "0.0.0.0"`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 25565, cfg.Port)
	assert.Equal(t, "Running RustMC!", cfg.Listing.MOTD)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
address = "127.0.0.1"
port = 12345

[listing]
motd = "Custom MOTD"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Address)
	assert.EqualValues(t, 12345, cfg.Port)
	assert.Equal(t, "Custom MOTD", cfg.Listing.MOTD)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `port = 25565`)
	t.Setenv("MCSERVER_PORT", "9999")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 9999, cfg.Port)
}

func TestLoadEncodesIconAsDataURI(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(iconPath, []byte{0x89, 0x50, 0x4e, 0x47}, 0o644))

	configPath := writeConfig(t, `
[listing]
icon = "`+iconPath+`"
`)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Contains(t, cfg.Listing.IconDataURI, "data:image/png;base64,")
}
