package main

import (
	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/logutil"
	"github.com/jongio/konsole/version"
	"github.com/spf13/cobra"
)

var log = logutil.NewLogger("cmd")

func newRootCmd(k *konsole.Konsole, info *version.Info) *cobra.Command {
	var (
		debug      bool
		structured bool
		level      string
	)
	cmd := &cobra.Command{
		Use:   "konsole",
		Short: "Colored console output and concurrent progress bars",
		Long: `konsole shows what the konsole library draws on a terminal.

Set KONSOLE_THEME to a YAML theme file to change the session colors,
NO_COLOR to disable colors and KONSOLE_DEBUG=true for debug logs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(debug, structured)
			if level != "" {
				logutil.SetLevel(logutil.ParseLevel(level))
			}
			log.Debug("starting", "command", cmd.Name(), "width", k.BufferWidth())
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&structured, "structured-logs", false, "Write logs as JSON")
	cmd.PersistentFlags().StringVar(&level, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(
		newBasicsCmd(k),
		newProgressCmd(k),
		version.NewCommand(info, k),
	)
	return cmd
}
