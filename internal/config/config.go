package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oceanbgc/boxpath/internal/domain"
)

// Config is the complete configuration for boxpath
type Config struct {
	// BasePath overrides sync-root auto-detection when set
	BasePath string `mapstructure:"base_path"`

	// GroupFolder is the shared folder name the locator searches for
	GroupFolder string `mapstructure:"group_folder"`

	// PersonalFolder is the member's folder name inside the group space.
	// Personal paths are unavailable when empty.
	PersonalFolder string `mapstructure:"personal_folder"`

	// Log configures the logger
	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures log output
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures the optional rotating log file
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	// The personal folder is a single directory name, not a path.
	if strings.ContainsAny(c.PersonalFolder, `/\`) {
		return fmt.Errorf("%w: personal_folder must be a folder name, not a path: %s",
			domain.ErrConfigInvalid, c.PersonalFolder)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level: %s", domain.ErrConfigInvalid, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format: %s", domain.ErrConfigInvalid, c.Log.Format)
	}

	if c.Log.File.Enabled && c.Log.File.Path == "" {
		return fmt.Errorf("%w: log file enabled but no path given", domain.ErrConfigInvalid)
	}

	return nil
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
				path = filepath.Join(home, path[2:])
			} else if len(path) == 1 {
				path = home
			}
		}
	}
	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}
