package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecapsule/internal/relay"
	"timecapsule/internal/services/custody"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOME", "KEY_SERVER", "LINK_BASE", "LISTEN", "PASSPHRASE", "HTTP_TIMEOUT"} {
		t.Setenv(envPrefix+k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, DefaultLinkBase, cfg.LinkBase)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.True(t, cfg.LocalCustody())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	content := `key_server: https://keys.example
link_base: https://letters.example
http_timeout: 3s
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "https://keys.example", cfg.KeyServer)
	assert.Equal(t, "https://letters.example", cfg.LinkBase)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)

	t.Setenv("CAPSULE_KEY_SERVER", "http://127.0.0.1:9999")
	t.Setenv("CAPSULE_HTTP_TIMEOUT", "1m")
	cfg, err = Load(home)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.KeyServer)
	assert.Equal(t, time.Minute, cfg.HTTPTimeout)
}

func TestLoad_InvalidInputs(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("key_server: [oops"), 0o600))
	_, err := Load(home)
	assert.Error(t, err)

	clean := t.TempDir()
	t.Setenv("CAPSULE_HTTP_TIMEOUT", "soon")
	_, err = Load(clean)
	assert.Error(t, err)
}

func TestSave_OmitsPassphrase(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, Save(Config{Home: home, KeyServer: "https://keys.example", Passphrase: "secret"}))

	raw, err := os.ReadFile(ConfigPath(home))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "https://keys.example", cfg.KeyServer)
}

func TestNewWire_SelectsCustodian(t *testing.T) {
	home := t.TempDir()

	local, err := NewWire(Config{Home: home, HTTPTimeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &custody.Service{}, local.Custodian)
	assert.ErrorIs(t, local.RequireCustody(), ErrPassphraseRequired)

	remote, err := NewWire(Config{Home: home, KeyServer: "http://keys", HTTPTimeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &relay.HTTPClient{}, remote.Custodian)
	assert.NoError(t, remote.RequireCustody())
}
