package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Elransh/gemini-zod/internal/gen"
)

func (a *app) newGenCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "gen FILE",
		Short:   "Generate a Go type and zod schema from a response schema",
		Example: `  geminizod gen --type Invoice --package model -f invoice_gen.go invoice.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(cmd, args[0])
			if err != nil {
				return err
			}
			src, err := gen.Render(gen.Options{
				Package: a.v.GetString("gen.package"),
				Name:    a.v.GetString("gen.type"),
			}, s)
			if err != nil {
				return err
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			log.Debug().Str("file", out).Int("bytes", len(src)).Msg("wrote generated code")
			if !a.v.GetBool("quiet") {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.String("type", "Response", "name of the generated type")
	f.String("package", "main", "package clause of the generated file")
	f.StringVarP(&out, "file", "f", "", "write to this file instead of stdout")
	_ = a.v.BindPFlag("gen.type", f.Lookup("type"))
	_ = a.v.BindPFlag("gen.package", f.Lookup("package"))
	return cmd
}
