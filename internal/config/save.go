package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tacogips/csnew/internal/debug"
)

// DefaultConfigFile is the file written by Save when no path is given.
const DefaultConfigFile = "config.yaml"

// Save writes cfg to path. The format follows the file extension. An
// existing file is only replaced when overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, path, "failed to create configuration directory", err)
	}

	v := viper.New()
	v.Set("workspace.root", cfg.Workspace.Root)
	v.Set("templates.directory", cfg.Templates.Directory)
	v.Set("project.descriptor", cfg.Project.Descriptor)
	v.Set("project.file_pattern", cfg.Project.FilePattern)
	v.Set("editor.command", cfg.Editor.Command)
	v.Set("output.color", cfg.Output.Color)

	var err error
	if overwrite {
		err = v.WriteConfigAs(path)
	} else {
		err = v.SafeWriteConfigAs(path)
	}
	if err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return NewConfigErrorWithCause(ConfigExists, path, "configuration file already exists", err)
		}
		return NewConfigErrorWithCause(ConfigWriteFailed, path, "failed to write configuration", err)
	}

	debug.Debug("[config] Saved configuration to %s", path)
	return nil
}
