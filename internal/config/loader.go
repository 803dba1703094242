package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/spf13/viper"
	"github.com/tacogips/csnew/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if no file exists.
	// An empty path searches DefaultConfigDir for config.json / config.yaml.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface on top of viper.
type FileLoader struct {
	searchDir string
}

// NewLoader creates a new FileLoader searching DefaultConfigDir.
func NewLoader() Loader {
	return &FileLoader{searchDir: DefaultConfigDir()}
}

// NewLoaderWithSearchDir creates a FileLoader searching dir instead of the default.
func NewLoaderWithSearchDir(dir string) Loader {
	return &FileLoader{searchDir: dir}
}

// Load loads configuration from the specified file path. The format follows
// the file extension (json, yaml, toml).
func (l *FileLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
	}

	return l.decode(v, path)
}

// LoadOrDefault loads configuration or returns defaults if the file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		cfg, err := l.Load(path)
		if err != nil {
			var cfgErr *ConfigError
			if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
				debug.Debug("[config] %s not found, using defaults", path)
				return DefaultConfig(), nil
			}
			return nil, err
		}
		return cfg, nil
	}

	if l.searchDir == "" {
		return DefaultConfig(), nil
	}

	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath(l.searchDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			debug.Debug("[config] No config file in %s, using defaults", l.searchDir)
			return DefaultConfig(), nil
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, l.searchDir, "invalid configuration syntax", err)
	}

	return l.decode(v, v.ConfigFileUsed())
}

func (l *FileLoader) decode(v *viper.Viper, path string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}
	debug.Debug("[config] Loaded configuration from %s", path)
	return &cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.Project.Descriptor == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.descriptor", "descriptor name cannot be empty")
	}
	if filepath.Base(config.Project.Descriptor) != config.Project.Descriptor {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.descriptor", "descriptor must be a file name, not a path")
	}
	if config.Project.FilePattern == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.file_pattern", "file pattern cannot be empty")
	}
	if _, err := glob.Compile(config.Project.FilePattern); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.file_pattern",
			fmt.Sprintf("invalid glob: %v", err))
	}
	return nil
}

// Validate validates the configuration with the default loader.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator || path[1] == '/' {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
