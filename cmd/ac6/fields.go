package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.FieldsUse,
		Short: messages.FieldsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range config.Fields() {
				description := f.Description
				if f.Required {
					description += messages.FieldsRequired
				}
				_, _ = fmt.Fprintf(out, messages.FieldsLineFmt, f.Key, f.Type, description)
				for _, opt := range f.Options {
					if opt.Description == "" {
						_, _ = fmt.Fprintf(out, messages.FieldsOptionFmt, "", opt.Value)
						continue
					}
					_, _ = fmt.Fprintf(out, messages.FieldsOptionDocFmt, "", opt.Value, opt.Description)
				}
			}
			return nil
		},
	}
}
