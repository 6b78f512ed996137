package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultLinkBase    = "https://capsule.local"
	DefaultListen      = ":8080"
	DefaultHTTPTimeout = 15 * time.Second
	configFileName     = "config.yaml"
	envPrefix          = "CAPSULE_"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string        `yaml:"home"`         // data directory, e.g. $HOME/.timecapsule
	KeyServer   string        `yaml:"key_server"`   // key server base URL; empty keeps shares in local custody
	LinkBase    string        `yaml:"link_base"`    // base URL for share links
	Listen      string        `yaml:"listen"`       // key server listen address
	Passphrase  string        `yaml:"passphrase"`   // protects shares held in local custody
	HTTPTimeout time.Duration `yaml:"http_timeout"` // per-request timeout for the key server client
	HTTP        *http.Client  `yaml:"-"`            // optional; built from HTTPTimeout when nil
}

// DefaultHome returns ~/.timecapsule.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".timecapsule"), nil
}

// ConfigPath returns the config file path inside home.
func ConfigPath(home string) string { return filepath.Join(home, configFileName) }

// LoadFile reads YAML configuration from path. A missing file yields an
// empty Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the effective configuration with priority:
// env (CAPSULE_<KEY>) > config file > defaults. Flags are applied by the
// caller on top of the result.
func Load(home string) (Config, error) {
	if home == "" {
		home = os.Getenv(envPrefix + "HOME")
	}
	if home == "" {
		var err error
		if home, err = DefaultHome(); err != nil {
			return Config{}, err
		}
	}
	cfg, err := LoadFile(ConfigPath(home))
	if err != nil {
		return Config{}, err
	}
	if cfg.Home == "" {
		cfg.Home = home
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}
	setString("KEY_SERVER", &c.KeyServer)
	setString("LINK_BASE", &c.LinkBase)
	setString("LISTEN", &c.Listen)
	setString("PASSPHRASE", &c.Passphrase)
	if v := os.Getenv(envPrefix + "HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sHTTP_TIMEOUT: %w", envPrefix, err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.LinkBase == "" {
		c.LinkBase = DefaultLinkBase
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
}

// LocalCustody reports whether server shares are kept on this machine.
func (c Config) LocalCustody() bool { return c.KeyServer == "" }

// Save writes the config (without the passphrase) to home as YAML.
func Save(cfg Config) error {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return err
	}
	cfg.Passphrase = ""
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(cfg.Home), data, 0o600)
}
