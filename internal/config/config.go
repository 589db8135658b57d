// Package config handles loading td.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tdtracker/td/internal/paths"
)

// Config represents the td.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
}

// Storage contains storage-related configuration.
type Storage struct {
	// Root overrides the default ~/.td storage root.
	Root string `toml:"root"`

	// FallbackNamespace names the directory used when no origin remote
	// resolves. Defaults to "no-project".
	FallbackNamespace string `toml:"fallback-namespace"`
}

// Load loads configuration from the working directory and the global config
// file. Returns an empty config if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(workDir, "td.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Root = mergeString(projectMeta.IsDefined("storage", "root"), projectCfg.Storage.Root, globalCfg.Storage.Root)
	merged.Storage.FallbackNamespace = mergeString(projectMeta.IsDefined("storage", "fallback-namespace"), projectCfg.Storage.FallbackNamespace, globalCfg.Storage.FallbackNamespace)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
