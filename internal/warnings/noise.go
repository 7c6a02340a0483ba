package warnings

import (
	"fmt"
	"strings"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

const (
	// NoiseModeDefault keeps all warnings.
	NoiseModeDefault = "default"
	// NoiseModeReduce hides suppressible non-critical warnings.
	NoiseModeReduce = "reduce"
	// NoiseModeQuiet hides every warning.
	NoiseModeQuiet = "quiet"
)

// ApplyNoiseControl applies a conservative noise filter to warning output.
// mode is the doctor --noise value.
func ApplyNoiseControl(items []Warning, mode string) []Warning {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	switch normalized {
	case "", NoiseModeDefault:
		if len(items) == 0 {
			return nil
		}
		return append([]Warning(nil), items...)
	case NoiseModeQuiet:
		return nil
	case NoiseModeReduce:
		filtered := make([]Warning, 0, len(items))
		for _, item := range items {
			if item.IsCritical() || !item.NoiseSuppressible {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}

	out := append([]Warning(nil), items...)
	out = append(out, Warning{
		Code:     CodeWarningNoiseModeInvalid,
		Subject:  "doctor --noise",
		Message:  fmt.Sprintf(messages.WarningsNoiseModeInvalidFmt, mode, NoiseModeDefault, NoiseModeReduce, NoiseModeQuiet),
		Fix:      messages.WarningsNoiseModeInvalidFix,
		Source:   SourceInternal,
		Severity: SeverityCritical,
	})
	return out
}
