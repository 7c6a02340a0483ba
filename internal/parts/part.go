package parts

// Kind is the catalog family a part belongs to.
type Kind string

// Catalog kinds. Frame and inner kinds share their slot name.
const (
	KindArmUnit   Kind = "arm_unit"
	KindBackUnit  Kind = "back_unit"
	KindHead      Kind = Kind(Head)
	KindCore      Kind = Kind(Core)
	KindArms      Kind = Kind(Arms)
	KindLegs      Kind = Kind(Legs)
	KindBooster   Kind = Kind(Booster)
	KindFCS       Kind = Kind(FCS)
	KindGenerator Kind = Kind(Generator)
	KindExpansion Kind = Kind(Expansion)
)

// Kinds returns every catalog kind.
func Kinds() []Kind {
	return []Kind{
		KindArmUnit,
		KindBackUnit,
		KindHead,
		KindCore,
		KindArms,
		KindLegs,
		KindBooster,
		KindFCS,
		KindGenerator,
		KindExpansion,
	}
}

// Optional reports whether slots of this kind may hold the not-equipped sentinel.
func (k Kind) Optional() bool {
	switch k {
	case KindArmUnit, KindBackUnit, KindBooster, KindExpansion:
		return true
	default:
		return false
	}
}

// Category is the classification tag of a part within its kind.
type Category string

// Well-known categories. Weapon and inner-part categories are free-form catalog strings.
const (
	CategoryNotEquipped  Category = "not-equipped"
	CategoryBipedal      Category = "bipedal"
	CategoryReverseJoint Category = "reverse-joint"
	CategoryTetrapod     Category = "tetrapod"
	CategoryTank         Category = "tank"
)

// Part is an immutable catalog entry. Attributes that do not apply to a kind stay zero.
type Part struct {
	ID           string
	Name         string
	Kind         Kind
	Category     Category
	Manufacturer string

	Price  int
	Weight int
	ENLoad int
	AP     int

	// WeaponBay marks arm units that may also be mounted on a back slot.
	WeaponBay bool

	// LoadLimit is set on legs.
	LoadLimit int
	// ArmsLoadLimit is set on arms.
	ArmsLoadLimit int
	// ENOutput is set on generators.
	ENOutput int
	// GeneratorOutputAdjective is the core's percentage applied to generator output.
	GeneratorOutputAdjective int
}

// IsNotEquipped reports whether p is the empty-slot sentinel of its kind.
func (p Part) IsNotEquipped() bool {
	return p.Category == CategoryNotEquipped
}

// IsTank reports whether p is a tank leg unit. A tank-class part without a kind,
// such as a hand-built pin, counts as tank legs.
func (p Part) IsTank() bool {
	return p.Category == CategoryTank && (p.Kind == "" || p.Kind == KindLegs)
}

// String returns the display name, falling back to the id.
func (p Part) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// NotEquipped returns the empty-slot sentinel for an optional kind.
// The second result is false when kind cannot be left empty.
func NotEquipped(kind Kind) (Part, bool) {
	if !kind.Optional() {
		return Part{}, false
	}
	return Part{
		ID:       NotEquippedID(kind),
		Name:     "(NOTHING)",
		Kind:     kind,
		Category: CategoryNotEquipped,
	}, true
}

// NotEquippedID is the stable id of the sentinel for kind.
func NotEquippedID(kind Kind) string {
	return "not-equipped-" + string(kind)
}
