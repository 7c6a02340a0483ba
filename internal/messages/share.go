package messages

// Messages for build queries.
const (
	ShareParseFmt           = "failed to parse build query: %w"
	ShareMissingKeyFmt      = "build query has no %q parameter for slot %s"
	ShareUnknownPartFmt     = "build query names unknown part %q for slot %s"
	ShareVersionMismatchFmt = "build query targets catalog %s, loaded catalog is %s"
)
