package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

func newPartsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PartsUse,
		Short: messages.PartsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := root.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.PartsCatalogFmt, cat.Version)

			if len(args) == 0 {
				for _, slot := range parts.Slots() {
					_, _ = fmt.Fprintf(out, messages.PartsSlotFmt, slot, len(cat.Pool(slot)))
				}
				return nil
			}

			slot, err := parts.ParseSlot(args[0])
			if err != nil {
				return err
			}
			for _, p := range cat.Pool(slot) {
				_, _ = fmt.Fprintf(out, messages.PartsPartFmt, p.ID, p.Name, p.Manufacturer, p.Price, p.Weight)
			}
			return nil
		},
	}
}
