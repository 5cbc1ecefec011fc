package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	argio "github.com/dzonerzy/go-miniarg/io"
)

func newParseCmd(io *argio.IOManager, logOpts *logOptions) *cobra.Command {
	var opts parserOptions
	var failFast bool

	cmd := &cobra.Command{
		Use:   "parse [line]",
		Short: "Match `program -key value` pairs and print them as key<TAB>value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyEnv(cmd.Flags())
			logger, err := logOpts.logger(io)
			if err != nil {
				return err
			}
			p, err := opts.parser(opts.keySet(nil), logger)
			if err != nil {
				return err
			}
			if len(args) == 0 && !io.IsPiped() {
				logger.Info("reading command lines from stdin, end with Ctrl-D")
			}

			out := cmd.OutOrStdout()
			var errs []error

			err = eachLine(args, cmd.InOrStdin(), func(line string) error {
				m := p.Parse(line)
				for {
					res, ok := m.Next()
					if !ok {
						return nil
					}
					if res.Err != nil {
						// --verbose hands error reporting to the parser
						if !opts.verbose {
							logger.Warning("%v", res.Err)
						}
						if failFast {
							return res.Err
						}
						errs = append(errs, res.Err)
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", io.Bold(res.Key.String()), res.Value)
				}
			})
			if err != nil {
				return err
			}
			return errors.Join(errs...)
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first parse error")

	return cmd
}
