package messages

// Descriptions shown by `ac6 fields` and the config template.
const (
	FieldCatalogVersion           = "Regulation version of the embedded catalog; empty selects the newest."
	FieldCatalogPath              = "YAML catalog file used instead of the embedded one."
	FieldAssemblyLimit            = "Draws attempted before a random build gives up."
	FieldAssemblySeed             = "Seed for reproducible random builds."
	FieldValidatorEnergy          = "Reject builds whose EN load exceeds EN output."
	FieldValidatorSameSide        = "Reject builds carrying the same weapon twice on one side."
	FieldValidatorLoadLimit       = "Reject builds heavier than the legs' load limit."
	FieldValidatorArmsLoad        = "Reject arm units heavier than the arms load limit."
	FieldValidatorMaxCoam         = "Reject builds costing more than this many COAM."
	FieldValidatorMaxLoad         = "Reject builds whose load exceeds this value."
	FieldFilterExcludeNotEquipped = "Slots that must never be left empty."
	FieldFilterBoosterOption      = "also removes tank legs"
	FieldFilterExcludeParts       = "Part ids never drawn."
	FieldFilterLegCategories      = "Leg classes that may be drawn; empty allows all."
	FieldFilterTankOption         = "draws leave the booster empty"
	FieldLocks                    = "Part id or name pinned to a slot."
	FieldStorePath                = "SQLite file holding saved builds."
	FieldProfileName              = "Profile name (lowercase letters, digits and dashes)."
	FieldProfileDescription       = "Shown in listings and MCP prompts."
	FieldProfileLocks             = "Locks applied on top of the top-level locks."
)
