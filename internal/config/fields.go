package config

import "github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldBool accepts true or false.
	FieldBool FieldType = "bool"
	// FieldEnum accepts one of a fixed set of options.
	FieldEnum FieldType = "enum"
	// FieldFreetext accepts arbitrary string input.
	FieldFreetext FieldType = "freetext"
	// FieldPositiveInt accepts a positive integer.
	FieldPositiveInt FieldType = "positive_int"
)

// FieldOption describes a single selectable value for a field.
type FieldOption struct {
	Value       string
	Description string // empty for options without descriptions
}

// FieldDef describes a single config field's type, constraints, and valid options.
type FieldDef struct {
	Key         string
	Type        FieldType
	Required    bool
	Options     []FieldOption
	Description string
}

// fields is the canonical ordered registry of documented config fields.
// Order matches the template layout.
var fields = []FieldDef{
	{Key: "catalog.version", Type: FieldFreetext, Description: messages.FieldCatalogVersion},
	{Key: "catalog.path", Type: FieldFreetext, Description: messages.FieldCatalogPath},
	{Key: "assembly.limit", Type: FieldPositiveInt, Description: messages.FieldAssemblyLimit},
	{Key: "assembly.seed", Type: FieldPositiveInt, Description: messages.FieldAssemblySeed},
	{Key: "validators.energy", Type: FieldBool, Description: messages.FieldValidatorEnergy},
	{Key: "validators.same_side_weapons", Type: FieldBool, Description: messages.FieldValidatorSameSide},
	{Key: "validators.load_limit", Type: FieldBool, Description: messages.FieldValidatorLoadLimit},
	{Key: "validators.arms_load_limit", Type: FieldBool, Description: messages.FieldValidatorArmsLoad},
	{Key: "validators.max_coam", Type: FieldPositiveInt, Description: messages.FieldValidatorMaxCoam},
	{Key: "validators.max_load", Type: FieldPositiveInt, Description: messages.FieldValidatorMaxLoad},
	{
		Key:         "filters.exclude_not_equipped",
		Type:        FieldEnum,
		Description: messages.FieldFilterExcludeNotEquipped,
		Options: []FieldOption{
			{Value: "right_arm_unit"},
			{Value: "left_arm_unit"},
			{Value: "right_back_unit"},
			{Value: "left_back_unit"},
			{Value: "booster", Description: messages.FieldFilterBoosterOption},
			{Value: "expansion"},
		},
	},
	{Key: "filters.exclude_parts", Type: FieldFreetext, Description: messages.FieldFilterExcludeParts},
	{
		Key:         "filters.leg_categories",
		Type:        FieldEnum,
		Description: messages.FieldFilterLegCategories,
		Options: []FieldOption{
			{Value: "bipedal"},
			{Value: "reverse-joint"},
			{Value: "tetrapod"},
			{Value: "tank", Description: messages.FieldFilterTankOption},
		},
	},
	{Key: "locks.<slot>", Type: FieldFreetext, Description: messages.FieldLocks},
	{Key: "store.path", Type: FieldFreetext, Description: messages.FieldStorePath},
	{Key: "profiles.name", Type: FieldFreetext, Required: true, Description: messages.FieldProfileName},
	{Key: "profiles.description", Type: FieldFreetext, Description: messages.FieldProfileDescription},
	{Key: "profiles.locks", Type: FieldFreetext, Description: messages.FieldProfileLocks},
	{Key: "profiles.max_coam", Type: FieldPositiveInt, Description: messages.FieldValidatorMaxCoam},
	{Key: "profiles.max_load", Type: FieldPositiveInt, Description: messages.FieldValidatorMaxLoad},
}

// fieldIndex provides O(1) lookup by key.
var fieldIndex = buildFieldIndex()

func buildFieldIndex() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Key] = i
	}
	return idx
}

// LookupField returns the field definition for the given config key.
// Returns false when the key is not in the catalog.
func LookupField(key string) (FieldDef, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return FieldDef{}, false
	}
	return copyFieldDef(fields[i]), true
}

// Fields returns a copy of all registered field definitions in catalog order.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	for i, f := range fields {
		out[i] = copyFieldDef(f)
	}
	return out
}

// FieldOptionValues returns the option values for a field as a plain string slice.
// Returns nil when the key is not in the catalog or has no options.
func FieldOptionValues(key string) []string {
	f, ok := LookupField(key)
	if !ok || len(f.Options) == 0 {
		return nil
	}
	values := make([]string, len(f.Options))
	for i, opt := range f.Options {
		values[i] = opt.Value
	}
	return values
}

// copyFieldDef returns a deep copy of a FieldDef so callers cannot mutate the registry.
func copyFieldDef(f FieldDef) FieldDef {
	if len(f.Options) > 0 {
		opts := make([]FieldOption, len(f.Options))
		copy(opts, f.Options)
		f.Options = opts
	}
	return f
}
