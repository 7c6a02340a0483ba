package messages

// Messages for turning config into an assembler.
const (
	ProjectionLockFmt        = "lock %s: %w"
	ProjectionLockSlotFmt    = "lock %q: %w"
	ProjectionLockSyntaxFmt  = "lock %q must look like slot=part"
	ProjectionExcludeSlotFmt = "exclude-not-equipped %q: %w"
)
