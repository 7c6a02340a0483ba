package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse   = "ac6"
	RootShort = "Random assembler for ARMORED CORE VI builds"
	RootLong  = "ac6 draws random AC builds that satisfy the configured locks, filters and validators,\nand keeps the ones you like in a local database."

	RootFlagConfig  = "Path to the config file (default ./ac6.toml, falling back to built-in defaults)"
	RootFlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// RandomUse is the random command name.
	RandomUse   = "random"
	RandomShort = "Assemble a random build"
	RandomLong  = "Draw parts for every slot until a build passes every enabled validator.\nLocks, filters and caps come from the config, the selected profile and the flags, in that order."

	RandomFlagLimit              = "Maximum number of draws before giving up"
	RandomFlagSeed               = "Seed for a reproducible draw"
	RandomFlagLock               = "Pin a slot to a part id or name (slot=part, repeatable)"
	RandomFlagMaxCoam            = "Reject builds whose total COAM exceeds this value"
	RandomFlagMaxLoad            = "Reject builds whose load exceeds this value"
	RandomFlagExcludeNotEquipped = "Never draw the empty part for these slots (repeatable)"
	RandomFlagProfile            = "Apply a [[profiles]] entry from the config"
	RandomFlagSave               = "Save the build under this name"
	RandomFlagNote               = "Note stored with --save"
	RandomFlagInteractive        = "Pick locks interactively before drawing"
	RandomFlagFormat             = "Output format: text or query"
	RandomFlagVerbose            = "Print every attempt and the narrowed pool sizes to stderr"

	RandomFormatText       = "text"
	RandomFormatQuery      = "query"
	RandomInvalidFormatFmt = "unknown format %q (expected text or query)"
	RandomNoteWithoutSave  = "--note requires --save"
	RandomQueryLineFmt     = "\nShare query: %s\n"
	RandomSavedFmt         = "Saved as %q.\n"
	RandomPoolSizesHeader  = "Candidates after locks and filters:"
	RandomPoolSizeFmt      = "  %-16s %d\n"
	RandomAttemptFmt       = "attempt %d: %s\n"
	RandomAttemptAccepted  = "accepted"
	RandomAttemptRejected  = "rejected"
	RandomAttemptErrorFmt  = "  - %v\n"

	// StatsUse is the stats command usage.
	StatsUse   = "stats <query|saved name>"
	StatsShort = "Show the stat sheet of a shared or saved build"

	// DiffUse is the diff command usage.
	DiffUse          = "diff <a> <b>"
	DiffShort        = "Compare the stat sheets of two builds"
	DiffFlagMaxLines = "Maximum diff lines to print"
	DiffIdentical    = "Builds are identical."

	// PartsUse is the parts command usage.
	PartsUse        = "parts [slot]"
	PartsShort      = "List slots or the parts a slot accepts"
	PartsSlotFmt    = "%-16s %3d parts\n"
	PartsPartFmt    = "%-28s %-30s %-18s %8d COAM %6d kg\n"
	PartsCatalogFmt = "Catalog %s\n"

	// SavedUse is the saved command name.
	SavedUse          = "saved"
	SavedShort        = "Manage saved builds"
	SavedListUse      = "list"
	SavedListShort    = "List saved builds"
	SavedShowUse      = "show <name>"
	SavedShowShort    = "Show a saved build"
	SavedDeleteUse    = "delete <name>"
	SavedDeleteShort  = "Delete a saved build"
	SavedExportUse    = "export"
	SavedExportShort  = "Export saved builds as zstd-compressed JSON lines"
	SavedImportUse    = "import <file>"
	SavedImportShort  = "Import builds written by export"
	SavedFlagOutput   = "Write the export to this file instead of stdout"
	SavedEmpty        = "No saved builds."
	SavedListLineFmt  = "%-24s %-10s %s  %s\n"
	SavedTimeLayout   = "2006-01-02 15:04"
	SavedShowHeadFmt  = "%s (catalog %s)\n"
	SavedShowNoteFmt  = "Note: %s\n"
	SavedDeletedFmt   = "Deleted %q.\n"
	SavedExportedFmt  = "Exported %d builds to %s.\n"
	SavedImportedFmt  = "Imported %d builds.\n"
	SavedExportTTY    = "refusing to write compressed output to a terminal; use --output"
	SavedOpenFileFmt  = "open %s: %w"
	SavedCloseFileFmt = "close %s: %w"

	ResolveQueryFailedFmt   = "decode %q: %w"
	ResolveSavedFailedFmt   = "load saved build %q: %w"
	ResolveCatalogFailedFmt = "load catalog %s for %q: %w"

	// InitUse is the init command name.
	InitUse       = "init"
	InitShort     = "Write a commented ac6.toml"
	InitFlagForce = "Overwrite an existing config file"
	InitFlagPrint = "Print the template to stdout instead of writing a file"
	InitExistsFmt = "%s already exists; re-run with --force to overwrite it"
	InitWroteFmt  = "Wrote %s.\n"
	InitWriteFmt  = "write %s: %w"

	// WizardUse is the wizard command name.
	WizardUse   = "wizard"
	WizardShort = "Edit the config locks interactively"
	WizardLong  = "Pick the slots to lock and the part for each, review the diff and write it to the [locks] table of the config."

	// McpPromptsUse is the mcp-prompts command name.
	McpPromptsUse   = "mcp-prompts"
	McpPromptsShort = "Run the MCP prompt server over stdio"
)

// Config field reference.
const (
	FieldsUse          = "fields"
	FieldsShort        = "List the documented ac6.toml keys"
	FieldsLineFmt      = "%-30s %-13s %s\n"
	FieldsRequired     = " (required)"
	FieldsOptionFmt    = "%32s- %s\n"
	FieldsOptionDocFmt = "%32s- %s: %s\n"
)
