package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/csnew/internal/app"
)

// templateCmd represents the template command group
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Template management commands",
	Long: `Manage the templates new files are rendered from.

Templates are plain text files named Class.tmpl and Interface.tmpl. They may
use three placeholders:
  ${namespace}  the inferred namespace (first occurrence only)
  ${classname}  the file name without .cs (first occurrence only)
  ${cursor}     where the cursor is placed; required`,
}

// templateNewCmd represents the template new command
var templateNewCmd = &cobra.Command{
	Use:   "new [PATH]",
	Short: "Export the built-in templates for customisation",
	Long: `Write the built-in Class.tmpl and Interface.tmpl to PATH.

Point templates.directory in the config file (or --templates) at PATH to
use the edited copies. Existing files are kept unless --force is given.

If PATH is not specified, the templates are written to ./templates.

Examples:
  csnew template new
  csnew template new ~/.config/csnew/templates
  csnew template new --force ./templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplateNew,
}

// templateCheckCmd represents the template check command
var templateCheckCmd = &cobra.Command{
	Use:   "check [PATH]",
	Short: "Validate a template directory",
	Long: `Check that PATH holds a usable template for every file kind.

Each template must exist, contain a ${cursor} placeholder and use no
placeholders other than ${namespace}, ${classname} and ${cursor}.

If PATH is not specified, the configured template directory is checked,
or the current directory when none is configured.

Examples:
  csnew template check
  csnew template check ./templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplateCheck,
}

// Template new command flags
var templateNewForce bool

func init() {
	templateCmd.AddCommand(templateNewCmd)
	templateCmd.AddCommand(templateCheckCmd)

	templateNewCmd.Flags().BoolVarP(&templateNewForce, FlagForce, "f", false, "Overwrite existing template files")
}

func runTemplateNew(cmd *cobra.Command, args []string) error {
	path := "templates"
	if len(args) > 0 {
		path = args[0]
	}

	result, err := app.NewTemplates(cmd.Context(), app.NewTemplatesOptions{
		Path:  path,
		Force: templateNewForce,
	})
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		printSuccess("Created " + f)
	}
	for _, f := range result.Skipped {
		printWarning("Skipped existing " + f + " (use --force to overwrite)")
	}
	printInfo(fmt.Sprintf("\nSet templates.directory to %s to use these templates.", result.Path))
	return nil
}

func runTemplateCheck(cmd *cobra.Command, args []string) error {
	path := activeConfig.Templates.Directory
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = "."
	}

	result, err := app.CheckTemplates(cmd.Context(), path)
	if err != nil {
		return err
	}

	if len(result.Errors) == 0 {
		printSuccess(fmt.Sprintf("All %d templates are valid", result.FilesChecked))
		return nil
	}

	printHeader("Template problems")
	for _, e := range result.Errors {
		if e.Line > 0 {
			printErrorMsg(fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message))
		} else {
			printErrorMsg(fmt.Sprintf("%s: %s", e.File, e.Message))
		}
	}
	fmt.Fprintln(os.Stderr)

	return fmt.Errorf("%d problem(s) found in %s", len(result.Errors), path)
}
