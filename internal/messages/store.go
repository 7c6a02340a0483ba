package messages

// Messages for the saved build store.
const (
	StoreEmptyPath   = "saved build store path is empty"
	StoreOpenFmt     = "failed to open saved build store %s: %w"
	StoreEmptyName   = "saved build name is empty"
	StoreNotFoundFmt = "no saved build named %q"
	StoreSaveFmt     = "failed to save build %q: %w"
	StoreQueryFmt    = "failed to read saved builds: %w"
	StoreDeleteFmt   = "failed to delete build %q: %w"
	StoreExportFmt   = "failed to export saved builds: %w"
	StoreImportFmt   = "failed to import saved builds (line %d): %w"
)
