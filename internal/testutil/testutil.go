package testutil

import (
	"os"
	"testing"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

// fixtureParts is a small catalog with round numbers so statistics can be checked by hand.
var fixtureParts = []parts.Part{
	{ID: "ru-rifle", Name: "RIFLE", Kind: parts.KindArmUnit, Category: "rifle", WeaponBay: true, Price: 100, Weight: 3000, ENLoad: 100},
	{ID: "ru-blade", Name: "BLADE", Kind: parts.KindArmUnit, Category: "melee", Price: 200, Weight: 2000, ENLoad: 300},
	{ID: "bu-missile", Name: "MISSILE", Kind: parts.KindBackUnit, Category: "missile", Price: 150, Weight: 2500, ENLoad: 200},
	{ID: "bu-shield", Name: "SHIELD", Kind: parts.KindBackUnit, Category: "shield", Price: 120, Weight: 1500, ENLoad: 150},
	{ID: "hd-light", Name: "LIGHT HEAD", Kind: parts.KindHead, Category: "head", Price: 50, Weight: 2000, ENLoad: 80, AP: 800},
	{ID: "hd-heavy", Name: "HEAVY HEAD", Kind: parts.KindHead, Category: "head", Price: 90, Weight: 4000, ENLoad: 120, AP: 1200},
	{ID: "co-std", Name: "STANDARD CORE", Kind: parts.KindCore, Category: "core", Price: 100, Weight: 10000, ENLoad: 250, AP: 3000, GeneratorOutputAdjective: 100},
	{ID: "co-gen", Name: "GENERATOR CORE", Kind: parts.KindCore, Category: "core", Price: 130, Weight: 12000, ENLoad: 300, AP: 3500, GeneratorOutputAdjective: 120},
	{ID: "ar-std", Name: "STANDARD ARMS", Kind: parts.KindArms, Category: "arms", Price: 80, Weight: 6000, ENLoad: 150, AP: 2000, ArmsLoadLimit: 9000},
	{ID: "lg-biped", Name: "BIPED LEGS", Kind: parts.KindLegs, Category: parts.CategoryBipedal, Price: 120, Weight: 20000, ENLoad: 400, AP: 5000, LoadLimit: 50000},
	{ID: "lg-tank", Name: "TANK LEGS", Kind: parts.KindLegs, Category: parts.CategoryTank, Price: 200, Weight: 35000, ENLoad: 600, AP: 8000, LoadLimit: 80000},
	{ID: "bo-std", Name: "BOOSTER", Kind: parts.KindBooster, Category: "booster", Price: 60, Weight: 1500, ENLoad: 250},
	{ID: "fc-std", Name: "FCS", Kind: parts.KindFCS, Category: "fcs", Price: 40, Weight: 100, ENLoad: 200},
	{ID: "gn-std", Name: "GENERATOR", Kind: parts.KindGenerator, Category: "generator", Price: 110, Weight: 3000, ENOutput: 3000},
	{ID: "ex-assault", Name: "ASSAULT ARMOR", Kind: parts.KindExpansion, Category: "expansion", Price: 0},
}

// Part returns the fixture part with id, including not-equipped sentinels.
// It fails the test when the id is unknown.
func Part(t testing.TB, id string) parts.Part {
	t.Helper()
	for _, p := range allFixtureParts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("unknown fixture part %q", id)
	return parts.Part{}
}

// NotEquipped returns the sentinel for kind.
func NotEquipped(kind parts.Kind) parts.Part {
	p, _ := parts.NotEquipped(kind)
	return p
}

// Pools returns candidate pools built from the fixture catalog, with sentinels on optional slots.
func Pools() parts.Candidates {
	pools := make(map[parts.Slot][]parts.Part)
	for _, slot := range parts.Slots() {
		for _, p := range allFixtureParts() {
			if slot.Accepts(p) {
				pools[slot] = append(pools[slot], p)
			}
		}
	}
	return parts.NewCandidates(pools)
}

// Selection returns a complete, valid slot mapping.
// Weight 51600, load 31600, EN load 2080, EN output 3000, coam 1130, AP 10800.
func Selection(t testing.TB) map[parts.Slot]parts.Part {
	t.Helper()
	return map[parts.Slot]parts.Part{
		parts.RightArmUnit:  Part(t, "ru-rifle"),
		parts.LeftArmUnit:   Part(t, "ru-blade"),
		parts.RightBackUnit: Part(t, "bu-missile"),
		parts.LeftBackUnit:  Part(t, "bu-shield"),
		parts.Head:          Part(t, "hd-light"),
		parts.Core:          Part(t, "co-std"),
		parts.Arms:          Part(t, "ar-std"),
		parts.Legs:          Part(t, "lg-biped"),
		parts.Booster:       Part(t, "bo-std"),
		parts.FCS:           Part(t, "fc-std"),
		parts.Generator:     Part(t, "gn-std"),
		parts.Expansion:     Part(t, "ex-assault"),
	}
}

func allFixtureParts() []parts.Part {
	out := append([]parts.Part(nil), fixtureParts...)
	for _, kind := range parts.Kinds() {
		if p, ok := parts.NotEquipped(kind); ok {
			out = append(out, p)
		}
	}
	return out
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
