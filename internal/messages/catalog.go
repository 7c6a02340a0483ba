package messages

// Messages for regulation catalogs.
const (
	CatalogReadFmt           = "failed to read catalog %s: %w"
	CatalogParseFmt          = "failed to parse catalog %s: %w"
	CatalogSchemaCompileFmt  = "failed to compile catalog schema: %w"
	CatalogSchemaFmt         = "catalog %s does not match the schema: %w"
	CatalogEmptyIDFmt        = "catalog %s: %s entry %d has an empty id"
	CatalogDuplicateIDFmt    = "catalog %s: duplicate part id %q"
	CatalogLegCategoryFmt    = "catalog %s: legs %s has category %q (expected bipedal, reverse-joint, tetrapod or tank)"
	CatalogSentinelKindFmt   = "catalog %s: %s parts cannot be left empty, remove %s"
	CatalogSentinelCountFmt  = "catalog %s: %s lists %d not-equipped entries"
	CatalogUnknownVersionFmt = "unknown catalog version %q (available: %s)"
	CatalogPartNotFoundFmt   = "no %s part matches %q"
	CatalogAmbiguousPartFmt  = "%q matches several %s parts: %s"
)
