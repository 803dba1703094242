package config

// Config represents the csnew configuration.
type Config struct {
	// Workspace configures the workspace new files are created in.
	Workspace WorkspaceConfig `mapstructure:"workspace" json:"workspace"`
	// Templates configures where templates are loaded from.
	Templates TemplateConfig `mapstructure:"templates" json:"templates"`
	// Project configures project descriptor discovery.
	Project ProjectConfig `mapstructure:"project" json:"project"`
	// Editor configures how created files are opened.
	Editor EditorConfig `mapstructure:"editor" json:"editor"`
	// Output configuration for display.
	Output OutputConfig `mapstructure:"output" json:"output"`
}

// WorkspaceConfig represents workspace settings.
type WorkspaceConfig struct {
	// Root is the workspace root directory. Empty means the current directory.
	Root string `mapstructure:"root" json:"root"`
}

// TemplateConfig represents template settings.
type TemplateConfig struct {
	// Directory holds Class.tmpl and Interface.tmpl. Empty means the built-in templates.
	Directory string `mapstructure:"directory" json:"directory"`
}

// ProjectConfig represents project descriptor settings.
type ProjectConfig struct {
	// Descriptor is the exact descriptor file name searched for first.
	Descriptor string `mapstructure:"descriptor" json:"descriptor"`
	// FilePattern is the glob for project files, searched when no descriptor is found.
	FilePattern string `mapstructure:"file_pattern" json:"file_pattern"`
}

// EditorConfig represents editor integration settings.
type EditorConfig struct {
	// Command opens a file at a position. {path}, {line} and {column} are
	// replaced; line and column are 1-based. Empty disables opening.
	Command string `mapstructure:"command" json:"command"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color" json:"color"`
}
