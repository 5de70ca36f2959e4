// Package config holds the explicit configuration value the stores and
// drivers are constructed with. Nothing below the CLI reads ambient state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/scriptsmith/scriptsync/internal/utils"
)

var (
	home, _           = os.UserHomeDir()
	DefaultConfigPath  = filepath.Join(home, ".scriptsync", "config.json")
	DefaultScriptsDir  = filepath.Join(home, "Scriptable")
	DefaultLogFilePath = filepath.Join(home, ".scriptsync", "scriptsync.log")
)

type Config struct {
	ScriptsDir string `json:"scripts_dir"`
	RepoOwner  string `json:"repo_owner"`
	RepoName   string `json:"repo_name"`
	Branch     string `json:"branch"`

	// Token is supplied via environment or .env, never persisted.
	Token string `json:"-"`
	// Path the config was loaded from.
	Path string `json:"-"`
}

func (c *Config) Validate() error {
	if c.ScriptsDir == "" {
		return errors.New("scripts dir is required")
	}
	abs, err := filepath.Abs(c.ScriptsDir)
	if err != nil {
		return fmt.Errorf("scripts dir: %w", err)
	}
	c.ScriptsDir = abs

	if c.RepoOwner == "" || c.RepoName == "" {
		return errors.New("repo owner and name are required")
	}
	if c.Branch == "" {
		c.Branch = "main"
	}
	return nil
}

func (c *Config) Save() error {
	if c.Path == "" {
		c.Path = DefaultConfigPath
	}
	if err := utils.EnsureParent(c.Path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, data, 0o644)
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config parse %q: %w", path, err)
	}

	cfg.Path = path
	return &cfg, nil
}
