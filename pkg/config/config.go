package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/filetug/cdtug/pkg/fsutils"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "cdtug"
const configFileName = "config.toml"

type Config struct {
	Shell    string `koanf:"shell"`     // shell started in the last visited dir; default $SHELL
	StartDir string `koanf:"start_dir"` // empty means use cwd
	LogFile  string `koanf:"log_file"`  // empty disables logging
	Debug    bool   `koanf:"debug"`
}

// DefaultPath returns $XDG_CONFIG_HOME/cdtug/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// Load reads the config file at path, or at DefaultPath when path is empty.
// A missing default file is not an error; a missing explicit one is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	path = fsutils.ExpandHome(path)

	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		if err = k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.StartDir = fsutils.ExpandHome(cfg.StartDir)
	cfg.LogFile = fsutils.ExpandHome(cfg.LogFile)
	cfg.Shell = fsutils.ExpandHome(cfg.Shell)
	return cfg, nil
}

// ShellOrDefault returns the configured shell, then $SHELL, then /bin/sh.
func (c *Config) ShellOrDefault() string {
	if c != nil && c.Shell != "" {
		return c.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}
