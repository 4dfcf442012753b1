// Command moneyfmt formats decimal numbers as currency.
//
// Usage:
//
//	moneyfmt [flags] VALUE...
//
// Every flag can also be set with a MONEYFMT_* environment variable,
// e.g. MONEYFMT_LOCALE=de-DE, or in a config file passed with --config.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newRootCmd(viper.New(), logger).Execute(); err != nil {
		logger.Error("moneyfmt failed", "error", err)
		os.Exit(1)
	}
}
