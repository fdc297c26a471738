package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config stores repository-local settings.
type Config struct {
	User  UserConfig  `toml:"user"`
	Store StoreConfig `toml:"store"`
}

// UserConfig is the identity commits are signed with.
type UserConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// StoreConfig holds object store options.
type StoreConfig struct {
	Compression bool `toml:"compression"`
}

// DefaultConfig returns the configuration a fresh store starts with.
func DefaultConfig() *Config {
	return &Config{
		User:  UserConfig{Name: "keva", Email: "keva@localhost"},
		Store: StoreConfig{Compression: true},
	}
}

// Identity renders the commit author string, "Name <email>".
func (c *Config) Identity() string {
	name := strings.TrimSpace(c.User.Name)
	if name == "" {
		name = "keva"
	}
	email := strings.TrimSpace(c.User.Email)
	if email == "" {
		email = "keva@localhost"
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

func (r *Repo) configPath() string {
	return filepath.Join(r.dir, "config.toml")
}

// ReadConfig reads config.toml. A missing file returns the defaults.
func (r *Repo) ReadConfig() (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(r.configPath(), cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("read config: unknown key %q", undec[0].String())
	}
	return cfg, nil
}

// WriteConfig atomically writes config.toml.
func (r *Repo) WriteConfig(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	tmp, err := os.CreateTemp(r.dir, ".config-tmp-*")
	if err != nil {
		return fmt.Errorf("write config: tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: close: %w", err)
	}
	if err := os.Rename(tmpName, r.configPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: rename: %w", err)
	}
	return nil
}
