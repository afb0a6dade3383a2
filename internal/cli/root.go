// Package cli implements the geminizod command line tool.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Elransh/gemini-zod/i18n"
)

// app holds the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "geminizod",
		Short: "Convert between zod schemas and Gemini response schemas",
		Long: `geminizod inspects and converts Gemini structured-output response schemas.

It checks schema files for structural problems, shows the equivalent zod
schema, normalizes schemas through the zod round trip, exports them as JSON
Schema or SDK values and generates Go types from them. Schemas can also be
imported from OpenAPI documents and Kubernetes CRDs.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.initLogging(cmd)
			if f := a.v.ConfigFileUsed(); f != "" {
				log.Debug().Str("file", f).Msg("using config file")
			}
			i18n.SetLanguage(a.v.GetString("lang"))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.geminizod/config.yaml)")
	pf.String("log-level", "disabled", "log level (debug, info, warn, error)")
	pf.String("output", "text", "output format (text, json, yaml)")
	pf.String("lang", "en", "message language (en, ja)")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")

	for _, name := range []string{"log-level", "output", "lang", "quiet"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}

	rootCmd.AddCommand(
		a.newCheckCmd(),
		a.newNormalizeCmd(),
		a.newDescribeCmd(),
		a.newExportCmd(),
		a.newGenCmd(),
		a.newImportCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	_ = godotenv.Load()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".geminizod"))
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}

	a.v.SetEnvPrefix("GEMINIZOD")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || a.cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", a.cfgFile, err)
	}
	return nil
}

// initLogging configures the global logger.
func (a *app) initLogging(cmd *cobra.Command) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch a.v.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true})
}
