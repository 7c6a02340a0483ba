package config

// Config is the content of ac6.toml.
type Config struct {
	Catalog    CatalogConfig     `toml:"catalog"`
	Assembly   AssemblyConfig    `toml:"assembly"`
	Validators ValidatorsConfig  `toml:"validators"`
	Filters    FiltersConfig     `toml:"filters"`
	Locks      map[string]string `toml:"locks"`
	Store      StoreConfig       `toml:"store"`
	Profiles   []Profile         `toml:"profiles"`
}

// CatalogConfig selects the regulation catalog. Path wins over Version.
type CatalogConfig struct {
	Version string `toml:"version"`
	Path    string `toml:"path"`
}

// AssemblyConfig tunes the random assembler.
type AssemblyConfig struct {
	Limit *int    `toml:"limit"`
	Seed  *uint64 `toml:"seed"`
}

// ValidatorsConfig toggles the built-in validators. Unset toggles are on.
type ValidatorsConfig struct {
	Energy          *bool `toml:"energy"`
	SameSideWeapons *bool `toml:"same_side_weapons"`
	LoadLimit       *bool `toml:"load_limit"`
	ArmsLoadLimit   *bool `toml:"arms_load_limit"`
	MaxCoam         *int  `toml:"max_coam"`
	MaxLoad         *int  `toml:"max_load"`
}

// FiltersConfig enables the built-in candidate filters.
type FiltersConfig struct {
	ExcludeNotEquipped []string `toml:"exclude_not_equipped"`
	ExcludeParts       []string `toml:"exclude_parts"`
	LegCategories      []string `toml:"leg_categories"`
}

// StoreConfig locates the saved build database.
type StoreConfig struct {
	Path string `toml:"path"`
}

// Profile is a named preset layered over the top-level settings.
type Profile struct {
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Locks       map[string]string `toml:"locks"`
	MaxCoam     *int              `toml:"max_coam"`
	MaxLoad     *int              `toml:"max_load"`
}

// Enabled reports whether an optional toggle is on. Unset means on.
func Enabled(toggle *bool) bool {
	return toggle == nil || *toggle
}
