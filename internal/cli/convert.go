package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	geminizod "github.com/Elransh/gemini-zod"
	"github.com/Elransh/gemini-zod/zod"
)

func (a *app) newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize FILE",
		Short: "Rewrite a schema the way the zod round trip produces it",
		Long: `Normalize converts the schema to zod and back. The result is what a zod
schema with the same shape would produce: optional properties become
nullable, required follows property order, INTEGER becomes NUMBER and enums
and unknown type tags are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(cmd, args[0])
			if err != nil {
				return err
			}
			out := geminizod.ToGemini(geminizod.ToZod(s))
			log.Debug().Bool("changed", !out.Equal(s)).Msg("normalized schema")
			return a.printData(cmd.OutOrStdout(), out)
		},
	}
}

// Description is the describe command's structured output.
type Description struct {
	File string `json:"file" yaml:"file"`
	Zod  string `json:"zod" yaml:"zod"`
}

func (a *app) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Print the zod schema equivalent to a response schema",
		Example: `  geminizod describe schema.json
  cat schema.yaml | geminizod describe -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(cmd, args[0])
			if err != nil {
				return err
			}
			d := Description{File: args[0], Zod: zod.Format(geminizod.ToZod(s))}
			if a.format() == "text" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), d.Zod)
				return err
			}
			return a.printData(cmd.OutOrStdout(), d)
		},
	}
}
