package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/wizard"
)

var runWizard = func(path string, out io.Writer) error {
	return wizard.Run(path, wizard.NewHuhUI(), out)
}

func newWizardCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.WizardUse,
		Short: messages.WizardShort,
		Long:  messages.WizardLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(messages.WizardRequiresTerminal)
			}
			return runWizard(root.configFile(), cmd.OutOrStdout())
		},
	}
}
