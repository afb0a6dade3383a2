package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Elransh/gemini-zod/gemini"
)

// loadSchema reads the schema named by path; "-" reads standard input,
// which may hold JSON or YAML.
func loadSchema(cmd *cobra.Command, path string) (*gemini.Schema, error) {
	var (
		s   *gemini.Schema
		err error
	)
	if path == "-" {
		var data []byte
		data, err = readInput(cmd, path)
		if err != nil {
			return nil, err
		}
		s, err = gemini.ParseYAML(data)
	} else {
		s, err = gemini.Load(path)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Int("properties", len(s.PropertyNames())).Str("type", string(s.Type)).Msg("loaded schema")
	return s, nil
}
