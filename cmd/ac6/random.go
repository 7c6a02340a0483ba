package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/projection"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/random"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/report"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/share"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/store"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/wizard"
)

var newPickerUI = func() wizard.UI {
	return wizard.NewHuhUI()
}

type randomOptions struct {
	limit       int
	seed        uint64
	locks       []string
	maxCoam     int
	maxLoad     int
	exclude     []string
	profile     string
	save        string
	note        string
	format      string
	interactive bool
	verbose     bool
}

func newRandomCmd(root *rootOptions) *cobra.Command {
	o := &randomOptions{}
	cmd := &cobra.Command{
		Use:   messages.RandomUse,
		Short: messages.RandomShort,
		Long:  messages.RandomLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd, root, o)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&o.limit, "limit", random.DefaultLimit, messages.RandomFlagLimit)
	flags.Uint64Var(&o.seed, "seed", 0, messages.RandomFlagSeed)
	flags.StringArrayVar(&o.locks, "lock", nil, messages.RandomFlagLock)
	flags.IntVar(&o.maxCoam, "max-coam", 0, messages.RandomFlagMaxCoam)
	flags.IntVar(&o.maxLoad, "max-load", 0, messages.RandomFlagMaxLoad)
	flags.StringSliceVar(&o.exclude, "exclude-not-equipped", nil, messages.RandomFlagExcludeNotEquipped)
	flags.StringVar(&o.profile, "profile", "", messages.RandomFlagProfile)
	flags.StringVar(&o.save, "save", "", messages.RandomFlagSave)
	flags.StringVar(&o.note, "note", "", messages.RandomFlagNote)
	flags.BoolVarP(&o.interactive, "interactive", "i", false, messages.RandomFlagInteractive)
	flags.StringVar(&o.format, "format", messages.RandomFormatText, messages.RandomFlagFormat)
	flags.BoolVarP(&o.verbose, "verbose", "v", false, messages.RandomFlagVerbose)
	return cmd
}

// overrides turns the flags the user actually set into projection overrides,
// so unset flags never shadow the config.
func (o *randomOptions) overrides(flags *pflag.FlagSet) (projection.Overrides, error) {
	locks, err := projection.ParseLockArgs(o.locks)
	if err != nil {
		return projection.Overrides{}, err
	}
	out := projection.Overrides{
		Profile:            o.profile,
		Locks:              locks,
		ExcludeNotEquipped: o.exclude,
	}
	if flags.Changed("limit") {
		out.Limit = &o.limit
	}
	if flags.Changed("seed") {
		out.Seed = &o.seed
	}
	if flags.Changed("max-coam") {
		out.MaxCoam = &o.maxCoam
	}
	if flags.Changed("max-load") {
		out.MaxLoad = &o.maxLoad
	}
	return out, nil
}

func runRandom(cmd *cobra.Command, root *rootOptions, o *randomOptions) error {
	if o.format != messages.RandomFormatText && o.format != messages.RandomFormatQuery {
		return fmt.Errorf(messages.RandomInvalidFormatFmt, o.format)
	}
	if o.note != "" && o.save == "" {
		return errors.New(messages.RandomNoteWithoutSave)
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, cat, err := root.load()
	if err != nil {
		return err
	}
	overrides, err := o.overrides(cmd.Flags())
	if err != nil {
		return err
	}
	plan, err := projection.Build(cfg, cat, overrides)
	if err != nil {
		return err
	}

	assembler := plan.Assembler
	if o.interactive {
		tracker, ok, err := wizard.PickLocks(newPickerUI(), cat, assembler.Locks())
		if err != nil && !wizard.IsAbort(err) {
			return err
		}
		if err != nil || !ok {
			_, _ = fmt.Fprintln(errOut, messages.WizardExitWithoutChanges)
			return nil
		}
		assembler = assembler.WithLocks(tracker)
	}
	if o.verbose {
		narrowed, err := assembler.Narrow(plan.Candidates)
		if err != nil {
			return err
		}
		printPoolSizes(errOut, narrowed)
		assembler = assembler.WithObserver(attemptPrinter(errOut))
	}

	b, err := assembler.Assemble(plan.Candidates)
	if err != nil {
		return err
	}
	query := share.Encode(b, cat.Version)
	if o.format == messages.RandomFormatQuery {
		_, _ = fmt.Fprintln(out, query)
	} else {
		_, _ = fmt.Fprint(out, report.Sheet(b))
		_, _ = fmt.Fprintf(out, messages.RandomQueryLineFmt, query)
	}

	if o.save == "" {
		return nil
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	saved, err := st.Save(cmd.Context(), store.SavedBuild{
		Name:           o.save,
		Query:          query,
		CatalogVersion: cat.Version,
		Note:           o.note,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(errOut, messages.RandomSavedFmt, saved.Name)
	return nil
}

func printPoolSizes(w io.Writer, c parts.Candidates) {
	_, _ = fmt.Fprintln(w, messages.RandomPoolSizesHeader)
	for _, slot := range parts.Slots() {
		_, _ = fmt.Fprintf(w, messages.RandomPoolSizeFmt, slot, c.Len(slot))
	}
}

// attemptPrinter reports every draw and the reasons a rejected draw failed.
func attemptPrinter(w io.Writer) func(random.Attempt) {
	return func(at random.Attempt) {
		if at.Result.IsSuccess() {
			_, _ = fmt.Fprintf(w, messages.RandomAttemptFmt, at.Number, messages.RandomAttemptAccepted)
			return
		}
		_, _ = fmt.Fprintf(w, messages.RandomAttemptFmt, at.Number, messages.RandomAttemptRejected)
		for _, err := range at.Result.Errors() {
			_, _ = fmt.Fprintf(w, messages.RandomAttemptErrorFmt, err)
		}
	}
}
