package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/report"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/store"
)

const stdoutName = "stdout"

func newSavedCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.SavedUse,
		Short: messages.SavedShort,
	}
	cmd.AddCommand(
		newSavedListCmd(root),
		newSavedShowCmd(root),
		newSavedDeleteCmd(root),
		newSavedExportCmd(root),
		newSavedImportCmd(root),
	)
	return cmd
}

// withStore opens the store named by the config and closes it after fn.
func withStore(root *rootOptions, fn func(st *store.Store) error) (err error) {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(st)
}

func newSavedListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SavedListUse,
		Short: messages.SavedListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(root, func(st *store.Store) error {
				builds, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(builds) == 0 {
					_, _ = fmt.Fprintln(out, messages.SavedEmpty)
					return nil
				}
				for _, b := range builds {
					_, _ = fmt.Fprintf(out, messages.SavedListLineFmt, b.Name, b.CatalogVersion, b.UpdatedAt.Local().Format(messages.SavedTimeLayout), b.Note)
				}
				return nil
			})
		},
	}
}

func newSavedShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SavedShowUse,
		Short: messages.SavedShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := root.load()
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			saved, err := st.Get(cmd.Context(), args[0])
			_ = st.Close()
			if err != nil {
				return fmt.Errorf(messages.ResolveSavedFailedFmt, args[0], err)
			}
			b, err := resolveBuild(cmd.Context(), cfg, cat, saved.Query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.SavedShowHeadFmt, saved.Name, saved.CatalogVersion)
			if saved.Note != "" {
				_, _ = fmt.Fprintf(out, messages.SavedShowNoteFmt, saved.Note)
			}
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprint(out, report.Sheet(b))
			_, _ = fmt.Fprintf(out, messages.RandomQueryLineFmt, saved.Query)
			return nil
		},
	}
}

func newSavedDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SavedDeleteUse,
		Short: messages.SavedDeleteShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(root, func(st *store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.SavedDeletedFmt, args[0])
				return nil
			})
		},
	}
}

func newSavedExportCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   messages.SavedExportUse,
		Short: messages.SavedExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" && isTerminal() {
				return errors.New(messages.SavedExportTTY)
			}
			return withStore(root, func(st *store.Store) error {
				var w io.Writer = cmd.OutOrStdout()
				target := stdoutName
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf(messages.SavedOpenFileFmt, output, err)
					}
					defer func() { _ = f.Close() }()
					w, target = f, output
				}
				n, err := st.ExportJSONL(cmd.Context(), w)
				if err != nil {
					return err
				}
				if f, ok := w.(*os.File); ok && target != stdoutName {
					if err := f.Close(); err != nil {
						return fmt.Errorf(messages.SavedCloseFileFmt, output, err)
					}
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.SavedExportedFmt, n, target)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", messages.SavedFlagOutput)
	return cmd
}

func newSavedImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SavedImportUse,
		Short: messages.SavedImportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf(messages.SavedOpenFileFmt, args[0], err)
			}
			defer func() { _ = f.Close() }()
			return withStore(root, func(st *store.Store) error {
				n, err := st.ImportJSONL(cmd.Context(), f)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.SavedImportedFmt, n)
				return nil
			})
		},
	}
}
