package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check config, catalog, saved builds and profiles for problems"
	DoctorLong  = "Load the config and catalog, open the saved build database, try every profile once and report settings that can never produce a build."

	DoctorNoiseFlagUsage = "warning noise: default, reduce or quiet"

	DoctorHealthCheckFmt = "Checking ac6 setup (%s)...\n"

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameCatalog  = "Catalog"
	DoctorCheckNameStore    = "Store"
	DoctorCheckNameProfiles = "Profiles"

	DoctorConfigLoadFailedFmt        = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend        = "Fix the file or run `ac6 init --force` to start from the template."
	DoctorConfigLoadLenientRecommend = "Compare the file with `ac6 init --print`; remaining checks use the partial config."
	DoctorConfigLoadedFmt            = "Configuration loaded from %s"

	DoctorCatalogLoadedFmt           = "Catalog %s loaded (%d parts, digest %s)"
	DoctorCatalogLoadFailedFmt       = "Failed to load catalog: %v"
	DoctorCatalogFileRecommend       = "Check catalog.path; the file must match the catalog schema."
	DoctorCatalogVersionRecommendFmt = "Set catalog.version to one of %v, or leave it empty for the newest."

	DoctorStoreMissingFmt             = "No saved builds yet (%s)"
	DoctorStoreOpenedFmt              = "%d saved builds in %s"
	DoctorStoreFailedFmt              = "Failed to open saved builds: %v"
	DoctorStoreRecommend              = "Check store.path and its directory permissions."
	DoctorStoreStaleBuildFmt          = "Saved build %q no longer decodes: %v"
	DoctorStoreStaleBuildRecommendFmt = "Run with catalog.version = %q or delete the build with `ac6 saved delete`."

	DoctorProfileDefaultLabel       = "(top-level)"
	DoctorProfileAssembledFmt       = "%s assembled after %d attempts"
	DoctorProfileExhaustedFmt       = "%s found no valid build: %v"
	DoctorProfileExhaustedRecommend = "Raise assembly.limit or relax max_coam, max_load and locks."
	DoctorProfileFailedFmt          = "%s cannot assemble: %v"
	DoctorProfileFailedRecommend    = "Fix the locks and filters named above."

	DoctorWarningSystemHeader = "\nRunning warning checks..."
	DoctorFailureSummary      = "Some checks failed or triggered warnings. Please address the items above."
	DoctorSuccessSummary      = "All checks passed."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "
)
