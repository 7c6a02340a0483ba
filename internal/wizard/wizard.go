// Package wizard implements the interactive lock picker behind `ac6 wizard`
// and `ac6 random --interactive`.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/projection"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/report"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/templates"
)

var (
	loadConfigLenientFunc = config.ParseConfigLenient
	openCatalogFunc       = catalog.Open
)

// Run edits the [locks] table of the config at path. A missing file is
// created from the template after confirmation. The user sees a diff of the
// change and confirms it before anything is written; the previous file is
// kept next to it with a .bak suffix.
func Run(path string, ui UI, out io.Writer) error {
	if path == "" {
		path = config.DefaultConfigFile
	}

	proceed, err := ensureConfig(path, ui, out)
	if err != nil {
		if IsAbort(err) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	if !proceed {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.WizardReadConfigFailedFmt, err)
	}
	cfg, err := config.ParseConfig(data, path)
	if err != nil {
		if !errors.Is(err, config.ErrConfigValidation) {
			return fmt.Errorf(messages.WizardLoadConfigFailedFmt, err)
		}
		lenient, lenientErr := loadConfigLenientFunc(data, path)
		if lenientErr != nil {
			return fmt.Errorf(messages.WizardLoadConfigFailedFmt, lenientErr)
		}
		_, _ = fmt.Fprintf(out, messages.WizardLenientLoadFmt, err)
		cfg = lenient
	}

	catalogPath, err := cfg.CatalogPath()
	if err != nil {
		return err
	}
	cat, err := openCatalogFunc(cfg.Catalog.Version, catalogPath)
	if err != nil {
		return err
	}

	current, err := projection.ResolveLocks(cat, cfg.Locks)
	if err != nil {
		_, _ = fmt.Fprintf(out, messages.WizardUnresolvedLocksFmt, err)
		current = lock.Empty()
	}

	tracker, ok, err := PickLocks(ui, cat, current)
	if err != nil {
		if IsAbort(err) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	return writeLocks(path, string(data), LockMap(tracker), ui, out)
}

func ensureConfig(path string, ui UI, out io.Writer) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	create := true
	if err := ui.Confirm(fmt.Sprintf(messages.WizardCreateConfigPromptFmt, path), &create); err != nil {
		return false, err
	}
	if !create {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return false, nil
	}
	data, err := templates.Read("config.toml")
	if err != nil {
		return false, fmt.Errorf(messages.WizardCreateFailedFmt, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf(messages.WizardCreateFailedFmt, err)
	}
	_, _ = fmt.Fprintf(out, messages.WizardConfigCreatedFmt, path)
	return true, nil
}

func writeLocks(path string, content string, locks map[string]string, ui UI, out io.Writer) error {
	patched, err := PatchLocks(content, locks)
	if err != nil {
		return fmt.Errorf(messages.WizardPatchConfigFailedFmt, err)
	}
	if patched == content {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}

	diff, _ := report.TextDiff(path, path, content, patched, report.DefaultDiffMaxLines)
	if err := ui.Note(fmt.Sprintf(messages.WizardDiffTitleFmt, path), diff); err != nil {
		if IsAbort(err) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	write := true
	if err := ui.Confirm(messages.WizardConfirmWrite, &write); err != nil {
		if IsAbort(err) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	if !write {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	backup := path + ".bak"
	err = withConfigLock(path, func() error {
		if err := os.WriteFile(backup, []byte(content), 0o644); err != nil {
			return fmt.Errorf(messages.WizardBackupFailedFmt, err)
		}
		if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
			return fmt.Errorf(messages.WizardWriteFailedFmt, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.WizardConfigUpdatedFmt, path, backup)
	return nil
}
