package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	geminizod "github.com/Elransh/gemini-zod"
	"github.com/Elransh/gemini-zod/gemini"
	"github.com/Elransh/gemini-zod/jsonschema"
)

// Export targets.
const (
	toJSONSchema = "jsonschema"
	toGenAI      = "genai"
	toResponse   = "response"
	toConfig     = "config"
)

func (a *app) newExportCmd() *cobra.Command {
	var (
		to     string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a response schema to another representation",
		Long: `Export prints the schema in another form:

  jsonschema  JSON Schema (draft 2020-12)
  genai       the Go SDK schema value
  response    the responseMimeType/responseSchema pair of a request
  config      the SDK generation config constraining output to the schema`,
		Example: `  geminizod export --to jsonschema --strict schema.json
  geminizod export --to response --output yaml schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(cmd, args[0])
			if err != nil {
				return err
			}
			var out any
			switch to {
			case toJSONSchema:
				out = jsonschema.Document(s, jsonschema.Options{Strict: strict})
			case toGenAI:
				out = gemini.ToGenAI(s)
			case toResponse:
				out = geminizod.ResponseSchemaFromZod(geminizod.ToZod(s))
			case toConfig:
				out = geminizod.GenerationConfig(geminizod.ToZod(s))
			default:
				return fmt.Errorf("unknown export target %q (want %s, %s, %s or %s)", to, toJSONSchema, toGenAI, toResponse, toConfig)
			}
			return a.printData(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&to, "to", toJSONSchema, "export target (jsonschema, genai, response, config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "forbid undeclared properties in JSON Schema output")
	return cmd
}
