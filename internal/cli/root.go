package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tacogips/csnew/internal/app"
	"github.com/tacogips/csnew/internal/config"
	"github.com/tacogips/csnew/internal/debug"
)

// Global flags
var (
	globalNoColor   bool
	globalQuiet     bool
	globalDebug     bool
	globalConfig    string
	globalWorkspace string
	globalTemplates string
)

// activeConfig is the configuration loaded for the running command,
// with global flag overrides applied.
var activeConfig = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "csnew",
	Short: "Create C# source files with the right namespace",
	Long: `csnew creates new C# class and interface files from templates.

The namespace of each file is inferred from the nearest project descriptor
(project.json or *.csproj) above it, followed by the directories between
that project and the new file.

Use "csnew class [SEED]" or "csnew interface [SEED]" to:
  1. Prompt for a file name (pre-filled from SEED when given)
  2. Resolve the namespace from the enclosing project
  3. Write the file and report where the cursor belongs`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)
	rootCmd.PersistentFlags().StringVarP(&globalWorkspace, FlagWorkspace, "w", "", DescWorkspace)
	rootCmd.PersistentFlags().StringVarP(&globalTemplates, FlagTemplates, "t", "", DescTemplates)

	// Add subcommands
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(interfaceCmd)
	rootCmd.AddCommand(namespaceCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging applies the logging flags.
func setupLogging(cmd *cobra.Command, args []string) error {
	debug.SetDebug(globalDebug)
	debug.SetNoColor(globalNoColor)
	if globalNoColor {
		color.NoColor = true
	}
	return nil
}

// loadConfig sets up logging and loads the configuration, then applies
// flag overrides on top of it.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cmd, args); err != nil {
		return err
	}

	cfg, err := config.NewLoader().LoadOrDefault(globalConfig)
	if err != nil {
		return err
	}

	if globalWorkspace != "" {
		cfg.Workspace.Root = globalWorkspace
	}
	if globalTemplates != "" {
		cfg.Templates.Directory = globalTemplates
	}
	if cfg.Templates.Directory != "" {
		dir, err := config.ExpandPath(cfg.Templates.Directory)
		if err != nil {
			return err
		}
		cfg.Templates.Directory = dir
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	color.NoColor = color.NoColor || globalNoColor || !cfg.Output.Color
	debug.SetNoColor(color.NoColor)

	debug.DebugValue("[cli] Workspace root", cfg.Workspace.Root)
	debug.DebugValue("[cli] Template directory", cfg.Templates.Directory)
	activeConfig = cfg
	return nil
}

// workspaceRoot returns the configured workspace root, or the current
// directory when none is set.
func workspaceRoot() (string, error) {
	if activeConfig.Workspace.Root != "" {
		return config.ExpandPath(activeConfig.Workspace.Root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return wd, nil
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}

	var appErr *app.AppError
	if errors.As(err, &appErr) {
		debug.Debug("[cli] %s failed at stage %s", appErr.Type, appErr.Stage)
	}
	printErrorMsg(fmt.Sprintf("Error: %v", err))
}
