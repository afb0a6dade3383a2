package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Elransh/gemini-zod/gemini"
)

// errInvalid is returned when at least one checked file has an error issue.
var errInvalid = errors.New("schema check failed")

// CheckResult is the outcome of checking one file.
type CheckResult struct {
	File   string        `json:"file" yaml:"file"`
	Valid  bool          `json:"valid" yaml:"valid"`
	Issues gemini.Issues `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check response schemas for structural problems",
		Long: `Check loads each schema file and reports problems such as unknown type
tags, arrays without items and required names that are not properties.
JSON files are also scanned for duplicated keys.

Warnings are printed but only errors make the command fail.`,
		Example: `  geminizod check schema.json
  geminizod check --output json a.yaml b.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]CheckResult, 0, len(args))
			failed := false
			for _, path := range args {
				s, err := loadSchema(cmd, path)
				if err != nil {
					return err
				}
				res := CheckResult{File: path, Valid: true}
				if isJSONFile(path) {
					data, err := readInput(cmd, path)
					if err != nil {
						return err
					}
					if res.Issues, err = gemini.DuplicateKeys(data); err != nil {
						return err
					}
				}
				if err := gemini.Check(s); err != nil {
					iss, ok := gemini.AsIssues(err)
					if !ok {
						return err
					}
					res.Issues = append(res.Issues, iss...)
				}
				res.Valid = !res.Issues.HasErrors()
				log.Debug().Str("file", path).Int("issues", len(res.Issues)).Bool("valid", res.Valid).Msg("checked schema")
				failed = failed || !res.Valid
				results = append(results, res)
			}

			w := cmd.OutOrStdout()
			if a.format() == "text" {
				for _, r := range results {
					printCheckText(w, r, a.v.GetBool("quiet"))
				}
			} else if err := a.printData(w, results); err != nil {
				return err
			}
			if failed {
				return errInvalid
			}
			return nil
		},
	}
}

// isJSONFile reports whether path is loaded as JSON. Standard input may be
// YAML and is skipped.
func isJSONFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return false
	}
	return path != "-"
}

func printCheckText(w io.Writer, r CheckResult, quiet bool) {
	if len(r.Issues) == 0 {
		if !quiet {
			fmt.Fprintf(w, "%s: ok\n", r.File)
		}
		return
	}
	for _, it := range r.Issues {
		fmt.Fprintf(w, "%s:%s: %s: %s (%s)\n", r.File, it.Path, it.Severity, it.Message, it.Code)
	}
}
