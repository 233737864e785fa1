package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/oceanbgc/boxpath/internal/domain"
)

// DefaultConfigPaths returns the default paths to search for config files
func DefaultConfigPaths() []string {
	paths := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "boxpath"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "boxpath"))
		paths = append(paths, filepath.Join(homeDir, ".boxpath"))
	}

	return paths
}

// Load reads and parses a configuration file. If path is empty, default
// locations are searched for config.yaml; a completely absent config file
// is not an error, since every value has a usable default. Environment
// variables (BOXPATH_PERSONAL_FOLDER, BOXPATH_GROUP_FOLDER) override file
// values; BOXPATH_ROOT is consumed by the locator as its first candidate.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range DefaultConfigPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, domain.ErrConfigNotFound
			}
			// No config anywhere; env vars and defaults still apply.
		} else if os.IsNotExist(err) {
			return nil, domain.ErrConfigNotFound
		} else {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
		}
	}

	return finish(v)
}

// LoadFromString parses configuration from a YAML string
func LoadFromString(yamlContent string) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(strings.NewReader(yamlContent)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Defaults double as key registration so env-only values survive
	// Unmarshal.
	v.SetDefault("base_path", "")
	v.SetDefault("group_folder", "")
	v.SetDefault("personal_folder", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file.max_size_mb", 10)
	v.SetDefault("log.file.max_age_days", 30)
	v.SetDefault("log.file.max_backups", 3)

	// BOXPATH_ROOT is intentionally not bound here: it is a locator
	// candidate (skipped when missing), while base_path is a hard
	// override that must exist.
	v.BindEnv("personal_folder", "BOXPATH_PERSONAL_FOLDER")
	v.BindEnv("group_folder", "BOXPATH_GROUP_FOLDER")

	return v
}

func finish(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	if cfg.BasePath != "" {
		cfg.BasePath = ExpandPath(cfg.BasePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
