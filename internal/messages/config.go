package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigFailedReadTemplateFmt = "failed to read template config.toml: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"

	ConfigLimitInvalidFmt         = "%s: assembly.limit must be greater than zero"
	ConfigMaxInvalidFmt           = "%s: %s must be greater than zero"
	ConfigExcludeSlotInvalidFmt   = "%s: filters.exclude_not_equipped: %w"
	ConfigExcludeSlotRequiredFmt  = "%s: filters.exclude_not_equipped lists %s, which cannot be left empty"
	ConfigExcludePartEmptyFmt     = "%s: filters.exclude_parts[%d] is empty"
	ConfigLegCategoryInvalidFmt   = "%s: filters.leg_categories[%d] = %q is not one of %s"
	ConfigLockSlotInvalidFmt      = "%s: %s: %w"
	ConfigLockPartEmptyFmt        = "%s: %s.%s is empty"
	ConfigProfileNameRequiredFmt  = "%s: profiles[%d].name is required"
	ConfigProfileNameInvalidFmt   = "%s: profiles[%d].name %q must use lowercase letters, digits and dashes"
	ConfigProfileNameDuplicateFmt = "%s: profiles[%d].name %q duplicates profiles[%d].name"
	ConfigStorePathEmptyFmt       = "%s: store.path is empty"
	ConfigUnrecognizedKeysFmt     = "%s: unrecognized config keys: %w"
	ConfigProfileNotFoundFmt      = "no profile named %q (available: %s)"
	ConfigProfileNotFoundNoneFmt  = "no profile named %q (the config defines no profiles)"

	// ConfigValidationGuidance is appended to validation errors to direct users to repair tools.
	ConfigValidationGuidance = "(run 'ac6 doctor' to diagnose)"
)
