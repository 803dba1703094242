package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/csnew/internal/app"
	"github.com/tacogips/csnew/internal/template/model"
)

// classCmd represents the class command
var classCmd = newCreateCmd(model.KindClass, `Create a new C# class file.

You are prompted for a file name relative to the workspace root. When SEED
is given (a directory, or a file whose directory is used) the prompt is
pre-filled with SEED/Class.cs.

The namespace comes from the nearest project.json (tooling.defaultNamespace)
or *.csproj (<RootNamespace>) above the new file, falling back to the
project directory name, followed by the intermediate directories.

Examples:
  csnew class
  csnew class src/Shop/Models
  csnew class --name src/Shop/Models/Customer.cs
  csnew class --name Customer.cs --workspace ~/src/shop --open`)

// interfaceCmd represents the interface command
var interfaceCmd = newCreateCmd(model.KindInterface, `Create a new C# interface file.

Works like "csnew class" but uses the interface template and suggests
IInterface.cs as the file name.

Examples:
  csnew interface
  csnew interface src/Shop/Services
  csnew interface --name src/Shop/Services/IOrderService.cs`)

// Create command flags
var (
	createName string
	createOpen bool
)

func init() {
	for _, cmd := range []*cobra.Command{classCmd, interfaceCmd} {
		cmd.Flags().StringVarP(&createName, FlagName, "n", "", DescName)
		cmd.Flags().BoolVarP(&createOpen, FlagOpen, "o", false, DescOpen)
	}
}

func newCreateCmd(kind model.FileKind, long string) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String() + " [SEED]",
		Short: fmt.Sprintf("Create a new C# %s file", kind),
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, kind, args)
		},
	}
}

func runCreate(cmd *cobra.Command, kind model.FileKind, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	var seed string
	if len(args) > 0 {
		seed = args[0]
	}

	var prompter app.Prompter = surveyPrompter{}
	if cmd.Flags().Changed(FlagName) {
		prompter = app.StaticPrompter{Value: createName}
	}

	scaffolder, err := app.NewScaffolder(app.ScaffolderOptions{
		TemplateDir:        activeConfig.Templates.Directory,
		DescriptorName:     activeConfig.Project.Descriptor,
		ProjectFilePattern: activeConfig.Project.FilePattern,
		Prompter:           prompter,
		Opener:             editorOpener{command: activeConfig.Editor.Command, launch: createOpen},
	})
	if err != nil {
		return err
	}

	result, err := scaffolder.CreateFile(cmd.Context(), app.CreateOptions{
		Kind:          kind,
		SeedPath:      seed,
		WorkspaceRoot: root,
	})
	if errors.Is(err, app.ErrCancelled) {
		return nil
	}
	if result != nil {
		printSuccess(fmt.Sprintf("Created %s %s in namespace %s", kind, result.ClassName, result.Namespace))
	}
	return err
}
