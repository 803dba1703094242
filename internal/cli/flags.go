package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig    = "config"
	FlagWorkspace = "workspace"
	FlagTemplates = "templates"
	FlagName      = "name"
	FlagOpen      = "open"
	FlagForce     = "force"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"

	// Flag descriptions
	DescConfig    = "Path to config file (default ~/.config/csnew/config.yaml)"
	DescWorkspace = "Workspace root new file names are relative to (default: current directory)"
	DescTemplates = "Directory holding Class.tmpl and Interface.tmpl (default: built-in templates)"
	DescName      = "File name to create, skipping the interactive prompt"
	DescOpen      = "Open the created file with the configured editor command"
	DescForce     = "Force overwrite"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress output"
	DescDebug     = "Enable debug logging"
)
