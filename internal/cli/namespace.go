package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/csnew/internal/app"
)

// namespaceCmd represents the namespace command
var namespaceCmd = &cobra.Command{
	Use:   "namespace [PATH]",
	Short: "Show the namespace a file at PATH would get",
	Long: `Resolve the namespace for PATH without creating anything.

PATH may be a directory or a file name (existing or not). When omitted the
current directory is used. The project descriptor is searched for upwards
from PATH exactly as when creating a file.

Examples:
  csnew namespace
  csnew namespace src/Shop/Models
  csnew namespace src/Shop/Models/Customer.cs --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNamespace,
}

// Namespace command flags
var namespaceJSON bool

func init() {
	namespaceCmd.Flags().BoolVar(&namespaceJSON, "json", false, "Output as JSON")
}

// NamespaceInfo is the JSON form of a namespace resolution.
type NamespaceInfo struct {
	Namespace     string   `json:"namespace"`
	RootNamespace string   `json:"root_namespace"`
	Declared      bool     `json:"declared"`
	Descriptor    string   `json:"descriptor"`
	ProjectRoot   string   `json:"project_root"`
	Segments      []string `json:"segments"`
}

func runNamespace(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	scaffolder, err := app.NewScaffolder(app.ScaffolderOptions{
		TemplateDir:        activeConfig.Templates.Directory,
		DescriptorName:     activeConfig.Project.Descriptor,
		ProjectFilePattern: activeConfig.Project.FilePattern,
		Prompter:           app.StaticPrompter{},
	})
	if err != nil {
		return err
	}

	res, err := scaffolder.ResolveNamespace(cmd.Context(), path)
	if err != nil {
		return err
	}

	info := NamespaceInfo{
		Namespace:     res.Namespace,
		RootNamespace: res.RootNamespace,
		Declared:      res.Declared,
		Descriptor:    res.Descriptor.Path,
		ProjectRoot:   res.Descriptor.RootDir,
		Segments:      res.TrailingSegments,
	}
	if info.Segments == nil {
		info.Segments = []string{}
	}

	if namespaceJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal namespace info: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), info.Namespace)
	if !globalQuiet {
		source := "directory name"
		if info.Declared {
			source = "declared"
		}
		printDetail("descriptor", info.Descriptor)
		printDetail("root namespace", fmt.Sprintf("%s (%s)", info.RootNamespace, source))
		if len(info.Segments) > 0 {
			printDetail("segments", strings.Join(info.Segments, ", "))
		}
	}
	return nil
}
