package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/govalues/moneyfmt"
)

const envPrefix = "moneyfmt"

var parsers = map[string]moneyfmt.Parser{
	"shopspring": moneyfmt.ParseShopspring,
	"govalues":   moneyfmt.ParseGovalues,
	"inf":        moneyfmt.ParseInf,
}

func newRootCmd(v *viper.Viper, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moneyfmt [flags] VALUE...",
		Short:         "Format decimal numbers as currency",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), v, logger, args)
		},
	}

	f := cmd.Flags()
	f.StringP("currency", "c", "USD", "ISO 4217 currency code")
	f.StringP("display", "d", moneyfmt.DisplaySymbol, `currency display: "code", "symbol", "symbol-narrow" or any text`)
	f.String("digits", "", `digits info, e.g. "1.0-3"`)
	f.StringP("locale", "l", "en-US", "BCP 47 locale")
	f.StringP("number", "n", "shopspring", "decimal type: shopspring, govalues or inf")
	f.String("config", "", "config file")
	return cmd
}

// loadConfig binds the flags, the environment and the config file, in
// increasing order of precedence: config file, environment, flags.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", path, err)
		}
	}
	return nil
}

func run(w io.Writer, v *viper.Viper, logger *slog.Logger, args []string) error {
	kind := v.GetString("number")
	parse, ok := parsers[kind]
	if !ok {
		return fmt.Errorf("unknown number type %q", kind)
	}
	p := moneyfmt.Pipe{
		Locale: v.GetString("locale"),
		Parse:  parse,
		Logger: logger,
	}
	currency, display, digits := v.GetString("currency"), v.GetString("display"), v.GetString("digits")
	logger.Debug("formatting", "locale", p.Locale, "currency", currency, "display", display, "digits", digits, "number", kind)

	for _, arg := range args {
		s, ok, err := p.Transform(arg, currency, display, digits, "")
		if err != nil {
			return err
		}
		if !ok {
			s = ""
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
