package messages

// Messages for static config warnings.
const (
	WarningsNoiseModeInvalidFmt = "noise mode %q is invalid (allowed: %s, %s, %s)"
	WarningsNoiseModeInvalidFix = "pass --noise default, reduce or quiet"

	WarningsConfigUnusableFmt = "config cannot be turned into an assembler: %v"
	WarningsConfigUnusableFix = "fix the reported setting"

	WarningsLockUnknownPartFmt = "lock does not resolve to a single part: %v"
	WarningsLockUnknownPartFix = "use a part id from `ac6 parts <slot>`"

	WarningsLockContradictionFmt = "locks can never produce a valid build: %v"
	WarningsLockContradictionFix = "tank legs need the empty booster; unlock one of them"

	WarningsFilterEmptiesPoolFmt = "filters and locks leave slot %s without candidates"
	WarningsFilterEmptiesPoolFix = "relax filters.exclude_not_equipped or filters.exclude_parts"

	WarningsMaxCoamUnreachableFmt = "max_coam %d is below the cheapest possible build (%d)"
	WarningsMaxCoamUnreachableFix = "raise max_coam or unlock expensive parts"

	WarningsMaxLoadUnreachableFmt = "max_load %d is below the lightest possible load (%d)"
	WarningsMaxLoadUnreachableFix = "raise max_load or unlock heavy parts"

	WarningsExcludeUnknownPartFmt = "filters.exclude_parts lists %q, which the catalog does not contain"
	WarningsExcludeUnknownPartFix = "remove the id or check the catalog version"

	WarningsValidatorsDisabled    = "every validator is disabled; any draw is accepted"
	WarningsValidatorsDisabledFix = "enable at least one validator in [validators]"

	WarningsCatalogVersionIgnoredFmt = "catalog.version %q is ignored because catalog.path is set"
	WarningsCatalogVersionIgnoredFix = "remove one of catalog.version or catalog.path"
)
