package cmd

import (
	"fmt"
	"os"

	"intl-sheets/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "intl-sheets",
	Short: "Sync a message catalog with a translation spreadsheet",
	Long: `intl-sheets keeps a Google Sheets translation backend in step with the
message catalog extracted from an application.

New message ids are appended to every language tab, stale ids are removed,
and translations already entered in the sheet are preserved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, regardless of the configured log format
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
