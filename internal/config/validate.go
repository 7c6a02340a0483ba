package config

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

var profileNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate ensures the config is complete and consistent.
// Lock and exclude keys are normalized to canonical slot names in place.
func (c *Config) Validate(path string) error {
	if c.Assembly.Limit != nil && *c.Assembly.Limit <= 0 {
		return fmt.Errorf(messages.ConfigLimitInvalidFmt, path)
	}
	if err := validateMax(path, "validators.max_coam", c.Validators.MaxCoam); err != nil {
		return err
	}
	if err := validateMax(path, "validators.max_load", c.Validators.MaxLoad); err != nil {
		return err
	}

	for i, raw := range c.Filters.ExcludeNotEquipped {
		slot, err := parts.ParseSlot(raw)
		if err != nil {
			return fmt.Errorf(messages.ConfigExcludeSlotInvalidFmt, path, err)
		}
		if !slot.Family().Optional() {
			return fmt.Errorf(messages.ConfigExcludeSlotRequiredFmt, path, slot)
		}
		c.Filters.ExcludeNotEquipped[i] = string(slot)
	}
	for i, id := range c.Filters.ExcludeParts {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf(messages.ConfigExcludePartEmptyFmt, path, i)
		}
	}
	legCategories := FieldOptionValues("filters.leg_categories")
	for i, category := range c.Filters.LegCategories {
		if !slices.Contains(legCategories, category) {
			return fmt.Errorf(messages.ConfigLegCategoryInvalidFmt, path, i, category, strings.Join(legCategories, ", "))
		}
	}

	locks, err := normalizeLocks(path, "locks", c.Locks)
	if err != nil {
		return err
	}
	c.Locks = locks

	if c.Store.Path != "" && strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf(messages.ConfigStorePathEmptyFmt, path)
	}

	seen := make(map[string]int, len(c.Profiles))
	for i := range c.Profiles {
		profile := &c.Profiles[i]
		if profile.Name == "" {
			return fmt.Errorf(messages.ConfigProfileNameRequiredFmt, path, i)
		}
		if !profileNamePattern.MatchString(profile.Name) {
			return fmt.Errorf(messages.ConfigProfileNameInvalidFmt, path, i, profile.Name)
		}
		if first, ok := seen[profile.Name]; ok {
			return fmt.Errorf(messages.ConfigProfileNameDuplicateFmt, path, i, profile.Name, first)
		}
		seen[profile.Name] = i

		section := fmt.Sprintf("profiles[%d]", i)
		if err := validateMax(path, section+".max_coam", profile.MaxCoam); err != nil {
			return err
		}
		if err := validateMax(path, section+".max_load", profile.MaxLoad); err != nil {
			return err
		}
		locks, err := normalizeLocks(path, section+".locks", profile.Locks)
		if err != nil {
			return err
		}
		profile.Locks = locks
	}
	return nil
}

func validateMax(path string, name string, value *int) error {
	if value != nil && *value <= 0 {
		return fmt.Errorf(messages.ConfigMaxInvalidFmt, path, name)
	}
	return nil
}

// normalizeLocks rewrites lock keys to canonical slot names.
// Keys are visited in sorted order so the first reported error is stable.
func normalizeLocks(path string, section string, locks map[string]string) (map[string]string, error) {
	if len(locks) == 0 {
		return locks, nil
	}
	keys := make([]string, 0, len(locks))
	for key := range locks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(locks))
	for _, key := range keys {
		slot, err := parts.ParseSlot(key)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigLockSlotInvalidFmt, path, section, err)
		}
		value := strings.TrimSpace(locks[key])
		if value == "" {
			return nil, fmt.Errorf(messages.ConfigLockPartEmptyFmt, path, section, key)
		}
		out[string(slot)] = value
	}
	return out, nil
}
