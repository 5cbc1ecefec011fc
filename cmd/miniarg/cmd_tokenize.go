package main

import (
	"fmt"

	"github.com/spf13/cobra"

	argio "github.com/dzonerzy/go-miniarg/io"
	"github.com/dzonerzy/go-miniarg/miniarg"
)

func newTokenizeCmd(io *argio.IOManager, logOpts *logOptions) *cobra.Command {
	var showRanges bool

	cmd := &cobra.Command{
		Use:   "tokenize [line]",
		Short: "Split a command line into tokens, one per output line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logOpts.logger(io)
			if err != nil {
				return err
			}
			if len(args) == 0 && !io.IsPiped() {
				logger.Info("reading command lines from stdin, end with Ctrl-D")
			}

			out := cmd.OutOrStdout()
			return eachLine(args, cmd.InOrStdin(), func(line string) error {
				if !showRanges {
					toks := miniarg.SplitPooled(line)
					defer toks.Release()
					for _, tok := range toks.List() {
						fmt.Fprintln(out, tok)
					}
					return nil
				}

				lex := miniarg.Tokenize(line)
				for {
					r, ok := lex.NextRange()
					if !ok {
						return nil
					}
					tok := line[r.Start.Byte():r.End.Byte()]
					fmt.Fprintf(out, "%s\t%s\n", io.Faint(fmt.Sprintf("%d:%d", r.Start.Byte(), r.End.Byte())), tok)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&showRanges, "ranges", "r", false, "prefix each token with its byte range in the line")

	return cmd
}
