package main

import (
	"fmt"

	"github.com/spf13/cobra"

	argio "github.com/dzonerzy/go-miniarg/io"
	"github.com/dzonerzy/go-miniarg/miniarg"
)

func newKeysCmd(io *argio.IOManager, logOpts *logOptions) *cobra.Command {
	var opts parserOptions
	var docs map[string]string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the help text for a key set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyEnv(cmd.Flags())

			normalized := make(map[string]string, len(docs))
			for k, v := range docs {
				normalized[miniarg.NormalizeKey(k)] = v
			}

			ks := opts.keySet(normalized)
			if len(ks.Keys()) == 0 {
				logger, err := logOpts.logger(io)
				if err != nil {
					return err
				}
				logger.Warning("no keys defined; use --keys or %s", envKeys)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ks.HelpText())
			return nil
		},
	}

	opts.registerKeys(cmd.Flags())
	cmd.Flags().StringToStringVarP(&docs, "doc", "d", nil, "help text per key, as key=text")

	return cmd
}
