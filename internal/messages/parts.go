package messages

// Messages for parts, builds and the random assembler.
const (
	PartsUnknownSlotFmt = "unknown slot %q (expected one of: %s)"

	AssemblyMissingSlotFmt = "build is missing a part for slot %s"
	AssemblyWrongKindFmt   = "part %s (%s) cannot be mounted on slot %s"
	AssemblyCouplingFmt    = "legs %s (%s) and booster %s violate the tank/booster coupling"

	LockContradictionFmt = "locked legs %s and locked booster %s cannot be combined"

	RandomInvalidLimitFmt     = "retry limit must be at least 1, got %d"
	RandomReservedKeyFmt      = "validator key %q is reserved for internal use"
	RandomEmptyPoolFmt        = "no candidates left for slot %s"
	RandomExhaustedFmt        = "no valid build found within %d attempts (%d validation errors)"
	RandomNoCoupledBoosterFmt = "no booster in the pool fits legs %s"

	ValidationNotOverEnergyFmt       = "EN load %d exceeds EN output %d"
	ValidationSameWeaponFmt          = "%s side carries %s twice"
	ValidationTotalCoamFmt           = "total coam %d exceeds %d"
	ValidationTotalLoadFmt           = "total load %d exceeds %d"
	ValidationLoadLimitFmt           = "load %d exceeds legs load limit %d"
	ValidationArmsLoadLimitFmt       = "arm units weigh %d, over the arms load limit %d"
	ValidationTankBoosterCouplingFmt = "legs %s and booster %s violate the tank/booster coupling"
	ValidationIncompletePartFmt      = "slot %s holds a part without an id"
)
