package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/report"
)

func newDiffCmd(root *rootOptions) *cobra.Command {
	var maxLines int
	cmd := &cobra.Command{
		Use:   messages.DiffUse,
		Short: messages.DiffShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := root.load()
			if err != nil {
				return err
			}
			from, err := resolveBuild(cmd.Context(), cfg, cat, args[0])
			if err != nil {
				return err
			}
			to, err := resolveBuild(cmd.Context(), cfg, cat, args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			diff, _ := report.Diff(args[0], args[1], from, to, maxLines)
			if diff == "" {
				_, _ = fmt.Fprintln(out, messages.DiffIdentical)
				return nil
			}
			_, _ = fmt.Fprint(out, diff)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLines, "max-lines", report.DefaultDiffMaxLines, messages.DiffFlagMaxLines)
	return cmd
}
