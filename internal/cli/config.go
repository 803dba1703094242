package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/csnew/internal/app"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write a configuration file populated with the default settings.

The file is written to the --config path, or ~/.config/csnew/config.yaml.
The format follows the file extension (yaml, json or toml).

Examples:
  csnew config init
  csnew config init --templates ~/.config/csnew/templates
  csnew config init --editor "code --goto {path}:{line}:{column}"
  csnew --config ./csnew.json config init --force`,
	Args: cobra.NoArgs,
	// The file being replaced may be the one that fails to load.
	PersistentPreRunE: setupLogging,
	RunE:              runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// Config init command flags
var (
	configInitForce  bool
	configInitEditor string
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, FlagForce, "f", false, "Overwrite an existing configuration file")
	configInitCmd.Flags().StringVar(&configInitEditor, "editor", "", "Editor command ({path}, {line}, {column} are replaced)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := app.InitConfig(cmd.Context(), app.InitConfigOptions{
		Path:          globalConfig,
		Force:         configInitForce,
		TemplateDir:   globalTemplates,
		EditorCommand: configInitEditor,
	})
	if err != nil {
		return err
	}
	printSuccess("Wrote " + path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(activeConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
