package app

import (
	"context"
	"path/filepath"

	"github.com/tacogips/csnew/internal/config"
	"github.com/tacogips/csnew/internal/debug"
)

// InitConfigOptions contains options for configuration initialization.
type InitConfigOptions struct {
	// Path is the configuration file to write. Empty means
	// <DefaultConfigDir>/config.yaml.
	Path string
	// Force overwrites an existing configuration file if true.
	Force bool
	// TemplateDir is recorded as templates.directory when set.
	TemplateDir string
	// EditorCommand is recorded as editor.command when set.
	EditorCommand string
}

// InitConfig writes a configuration file populated with the defaults and
// returns its path.
func InitConfig(ctx context.Context, opts InitConfigOptions) (string, error) {
	debug.DebugSection("[app] InitConfig workflow start")
	debug.DebugValue("[app] Path", opts.Path)
	debug.DebugValue("[app] Force", opts.Force)

	path := opts.Path
	if path == "" {
		dir := config.DefaultConfigDir()
		if dir == "" {
			return "", NewAppError(ValidationFailed, StageWriting, "cannot determine home directory; pass an explicit path", nil)
		}
		path = filepath.Join(dir, config.DefaultConfigFile)
	}

	cfg := config.DefaultConfig()
	if opts.TemplateDir != "" {
		abs, err := config.ExpandPath(opts.TemplateDir)
		if err != nil {
			return "", NewAppError(ValidationFailed, StageWriting, "invalid template directory", err)
		}
		cfg.Templates.Directory = abs
	}
	cfg.Editor.Command = opts.EditorCommand

	if err := config.Save(path, cfg, opts.Force); err != nil {
		if config.IsType(err, config.ConfigExists) {
			return "", NewAppError(FileAlreadyExists, StageWriting,
				"configuration already exists at "+path+" (use --force to reinitialize)", err)
		}
		return "", NewAppError(WriteFailed, StageWriting, "failed to save configuration", err)
	}

	debug.Debug("[app] InitConfig workflow completed: %s", path)
	return path, nil
}
