package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	argio "github.com/dzonerzy/go-miniarg/io"
	"github.com/dzonerzy/go-miniarg/miniarg"
)

func main() {
	io := argio.New()
	rootCmd := newRootCmd(io)
	if err := rootCmd.Execute(); err != nil {
		// parse errors were already reported line by line
		var perr *miniarg.ParseError
		if !errors.As(err, &perr) {
			argio.NewLogger(io).Error("%v", err)
		}
		os.Exit(miniarg.NewExitCodes().Resolve(err))
	}
}

func newRootCmd(io *argio.IOManager) *cobra.Command {
	var logOpts logOptions

	rootCmd := &cobra.Command{
		Use:           "miniarg",
		Short:         "Split and match command lines of the form `program -key value`",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logOpts.applyColor(io)
		},
	}
	rootCmd.SetIn(io.In())
	rootCmd.SetOut(io.Out())
	rootCmd.SetErr(io.Err())
	logOpts.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newTokenizeCmd(io, &logOpts))
	rootCmd.AddCommand(newParseCmd(io, &logOpts))
	rootCmd.AddCommand(newKeysCmd(io, &logOpts))

	return rootCmd
}
