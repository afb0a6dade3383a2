package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/kubeopenapi"
)

func (a *app) newImportCmd() *cobra.Command {
	var (
		kind, name  string
		opts        kubeopenapi.Options
		firstBranch bool
	)
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import an OpenAPI v3 schema or Kubernetes CRD as a response schema",
		Long: `Import reads an OpenAPI v3 schema (JSON or YAML) and prints the equivalent
response schema. CustomResourceDefinition documents are unwrapped to the
openAPIV3Schema of the storage version unless --crd-version is given; in a
multi-document bundle the CRD is picked with --kind or --name.

Constructs a response schema cannot express are imported as nullable
placeholder objects and reported as warnings.`,
		Example: `  geminizod import --kind Widget crds.yaml
  geminizod import --ref Pet --output yaml openapi.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" && name != "" {
				return fmt.Errorf("--kind and --name are mutually exclusive")
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if firstBranch {
				opts.Ambiguity = kubeopenapi.AmbiguityFirstBranch
			}

			var (
				s    *gemini.Schema
				diag kubeopenapi.Diag
			)
			switch {
			case kind != "":
				s, diag, err = kubeopenapi.ImportYAMLForCRDKind(data, kind, opts)
			case name != "":
				s, diag, err = kubeopenapi.ImportYAMLForCRDName(data, name, opts)
			default:
				s, diag, err = kubeopenapi.Import(data, opts)
			}
			if err != nil {
				return err
			}
			for _, w := range diag.Warnings() {
				log.Warn().Str("file", args[0]).Msg(w)
				if !a.v.GetBool("quiet") {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
				}
			}
			return a.printData(cmd.OutOrStdout(), s)
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "", "import the CRD with this spec.names.kind from a bundle")
	f.StringVar(&name, "name", "", "import the CRD with this metadata.name from a bundle")
	f.StringVar(&opts.Version, "crd-version", "", "CRD version to import (default: storage version)")
	f.StringVar(&opts.Ref, "ref", "", "import the named definition instead of the root schema")
	f.BoolVar(&opts.NullableOptional, "nullable-optional", false, "mark properties that are not required as nullable")
	f.BoolVar(&firstBranch, "first-branch", false, "import the first branch of oneOf/anyOf instead of a placeholder")
	return cmd
}

// readInput reads a file, or standard input for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
