package warnings

import (
	"errors"
	"fmt"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/projection"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/random"
)

// CheckConfig reports settings that will make assembly fail or behave
// unexpectedly. The top-level settings and every profile are checked
// separately without drawing a single build.
func CheckConfig(cfg *config.Config, cat *catalog.Catalog) []Warning {
	var out []Warning

	if cfg.Catalog.Path != "" && cfg.Catalog.Version != "" {
		out = append(out, Warning{
			Code:              CodeCatalogVersionIgnored,
			Subject:           "catalog.version",
			Message:           fmt.Sprintf(messages.WarningsCatalogVersionIgnoredFmt, cfg.Catalog.Version),
			Fix:               messages.WarningsCatalogVersionIgnoredFix,
			Source:            SourceConfig,
			NoiseSuppressible: true,
		})
	}

	for _, id := range cfg.Filters.ExcludeParts {
		if _, ok := cat.ByID(id); ok {
			continue
		}
		out = append(out, Warning{
			Code:              CodeExcludeUnknownPart,
			Subject:           "filters.exclude_parts",
			Message:           fmt.Sprintf(messages.WarningsExcludeUnknownPartFmt, id),
			Fix:               messages.WarningsExcludeUnknownPartFix,
			Source:            SourceConfig,
			NoiseSuppressible: true,
		})
	}

	if len(projection.Validators(cfg.Validators, cfg.Validators.MaxCoam, cfg.Validators.MaxLoad)) == 0 {
		out = append(out, Warning{
			Code:              CodeValidatorsDisabled,
			Subject:           "validators",
			Message:           messages.WarningsValidatorsDisabled,
			Fix:               messages.WarningsValidatorsDisabledFix,
			Source:            SourceConfig,
			NoiseSuppressible: true,
		})
	}

	out = append(out, checkScope("config", cfg, cat, projection.Overrides{})...)
	for _, name := range cfg.ProfileNames() {
		out = append(out, checkScope("profiles."+name, cfg, cat, projection.Overrides{Profile: name})...)
	}
	return out
}

func checkScope(subject string, cfg *config.Config, cat *catalog.Catalog, o projection.Overrides) []Warning {
	critical := func(code string, message string, fix string) []Warning {
		return []Warning{{
			Code:     code,
			Subject:  subject,
			Message:  message,
			Fix:      fix,
			Source:   SourceConfig,
			Severity: SeverityCritical,
		}}
	}

	plan, err := projection.Build(cfg, cat, o)
	if err != nil {
		if errors.Is(err, catalog.ErrPartNotFound) || errors.Is(err, catalog.ErrAmbiguousPart) {
			return critical(CodeLockUnknownPart, fmt.Sprintf(messages.WarningsLockUnknownPartFmt, err), messages.WarningsLockUnknownPartFix)
		}
		return critical(CodeConfigUnusable, fmt.Sprintf(messages.WarningsConfigUnusableFmt, err), messages.WarningsConfigUnusableFix)
	}

	narrowed, err := plan.Assembler.Narrow(plan.Candidates)
	if err != nil {
		var empty *random.EmptyPoolError
		switch {
		case errors.Is(err, random.ErrContradictoryLocks):
			return critical(CodeLockContradiction, fmt.Sprintf(messages.WarningsLockContradictionFmt, err), messages.WarningsLockContradictionFix)
		case errors.As(err, &empty):
			return critical(CodeFilterEmptiesPool, fmt.Sprintf(messages.WarningsFilterEmptiesPoolFmt, empty.Slot), messages.WarningsFilterEmptiesPoolFix)
		default:
			return critical(CodeConfigUnusable, fmt.Sprintf(messages.WarningsConfigUnusableFmt, err), messages.WarningsConfigUnusableFix)
		}
	}

	// Pins are drawn even when a filter dropped them from their pool.
	for slot, p := range plan.Assembler.Locks().Selection() {
		narrowed = narrowed.With(slot, []parts.Part{p})
	}

	var out []Warning
	if plan.MaxCoam != nil {
		floor := MinimumSum(narrowed, func(p parts.Part) int { return p.Price }, parts.Expansion)
		if *plan.MaxCoam < floor {
			out = append(out, critical(CodeMaxCoamUnreachable,
				fmt.Sprintf(messages.WarningsMaxCoamUnreachableFmt, *plan.MaxCoam, floor),
				messages.WarningsMaxCoamUnreachableFix)...)
		}
	}
	if plan.MaxLoad != nil {
		floor := MinimumSum(narrowed, func(p parts.Part) int { return p.Weight }, parts.Legs, parts.Expansion)
		if *plan.MaxLoad < floor {
			out = append(out, critical(CodeMaxLoadUnreachable,
				fmt.Sprintf(messages.WarningsMaxLoadUnreachableFmt, *plan.MaxLoad, floor),
				messages.WarningsMaxLoadUnreachableFix)...)
		}
	}
	return out
}

// MinimumSum is the smallest total of value any build drawn from c can reach,
// skipping the excluded slots. Empty pools contribute nothing.
func MinimumSum(c parts.Candidates, value func(parts.Part) int, excluded ...parts.Slot) int {
	total := 0
	for _, slot := range parts.Slots() {
		if isExcluded(slot, excluded) {
			continue
		}
		pool := c.Get(slot)
		if len(pool) == 0 {
			continue
		}
		lowest := value(pool[0])
		for _, p := range pool[1:] {
			lowest = min(lowest, value(p))
		}
		total += lowest
	}
	return total
}

func isExcluded(slot parts.Slot, excluded []parts.Slot) bool {
	for _, s := range excluded {
		if s == slot {
			return true
		}
	}
	return false
}
