package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/templates"
)

var statConfigPath = os.Stat

func newInitCmd(root *rootOptions) *cobra.Command {
	var force bool
	var printOnly bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := templates.Read("config.toml")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if printOnly {
				_, err := out.Write(data)
				return err
			}

			path, err := homedir.Expand(root.configFile())
			if err != nil {
				return err
			}
			if !force {
				if _, err := statConfigPath(path); err == nil {
					return fmt.Errorf(messages.InitExistsFmt, path)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf(messages.InitWriteFmt, path, err)
				}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf(messages.InitWriteFmt, path, err)
			}
			_, _ = fmt.Fprintf(out, messages.InitWroteFmt, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	cmd.Flags().BoolVar(&printOnly, "print", false, messages.InitFlagPrint)
	return cmd
}
