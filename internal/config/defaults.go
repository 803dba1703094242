package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tacogips/csnew/internal/project"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Descriptor:  project.DefaultDescriptorName,
			FilePattern: project.DefaultProjectFilePattern,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// setDefaults registers DefaultConfig's values with v.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("workspace.root", d.Workspace.Root)
	v.SetDefault("templates.directory", d.Templates.Directory)
	v.SetDefault("project.descriptor", d.Project.Descriptor)
	v.SetDefault("project.file_pattern", d.Project.FilePattern)
	v.SetDefault("editor.command", d.Editor.Command)
	v.SetDefault("output.color", d.Output.Color)
}

// DefaultConfigDir returns the directory searched for config.json / config.yaml.
func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "csnew")
}
