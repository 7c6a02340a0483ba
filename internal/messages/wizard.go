package messages

// Wizard prompts, summaries and errors.
const (
	WizardRequiresTerminal   = "wizard requires an interactive terminal"
	WizardExitWithoutChanges = "Exited without changes."

	WizardCreateConfigPromptFmt = "%s does not exist. Create it from the template?"
	WizardConfigCreatedFmt      = "Created %s.\n"
	WizardLenientLoadFmt        = "Config has validation errors; the wizard continues with what it could read: %v\n"
	WizardUnresolvedLocksFmt    = "Ignoring current locks that do not resolve: %v\n"

	WizardSlotsTitle       = "Slots to lock (unselected slots are drawn at random)"
	WizardPartTitleFmt     = "Part for %s"
	WizardPartOptionFmt    = "%s [%s]"
	WizardSummaryTitle     = "Locks"
	WizardSummaryNone      = "(none; every slot is drawn at random)"
	WizardSummaryLineFmt   = "%-16s %s"
	WizardConfirmLocks     = "Use these locks?"
	WizardDiffTitleFmt     = "Changes to %s"
	WizardConfirmWrite     = "Write the changes?"
	WizardNoChanges        = "Locks unchanged."
	WizardConfigUpdatedFmt = "Updated %s (backup at %s).\n"

	WizardEmptyPoolFmt         = "no part can be locked to %s with the other locks chosen"
	WizardUnknownOptionFmt     = "unknown option %q"
	WizardLoadConfigFailedFmt  = "failed to load config: %w"
	WizardReadConfigFailedFmt  = "failed to read config: %w"
	WizardPatchConfigFailedFmt = "failed to patch config: %w"
	WizardBackupFailedFmt      = "failed to backup config: %w"
	WizardWriteFailedFmt       = "failed to write config: %w"
	WizardCreateFailedFmt      = "failed to create config: %w"
	WizardPatchInvalidFmt      = "patched config is invalid TOML: %w"
	WizardParseConfigFailedFmt = "failed to parse config: %w"
	WizardOpenLockFmt          = "failed to open lock file %s: %w"
	WizardLockFmt              = "failed to lock %s: %w"
	WizardLockTimeoutFmt       = "timed out after %s waiting for another wizard to finish"
)
