package wizard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	// toml only checks the input syntax; edits are line based.
	toml "github.com/pelletier/go-toml"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

// The [locks] table is rewritten line by line instead of re-encoding the whole
// document, so comments and the layout of every other table survive. The
// input must parse as TOML and the result must parse as a config.

const locksHeader = "[locks]"

// PatchLocks replaces the key lines of the [locks] table in content with
// locks, sorted by slot. Comment and blank lines inside the table are kept.
// A missing table is appended at the end.
func PatchLocks(content string, locks map[string]string) (string, error) {
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.WizardParseConfigFailedFmt, err)
	}
	lines := strings.Split(content, "\n")
	start, end := findTable(lines, locksHeader)

	var out []string
	if start < 0 {
		if trimmed := strings.TrimRight(content, "\n"); trimmed != "" {
			out = append(out, trimmed, "")
		}
		out = append(out, locksHeader)
		out = append(out, lockLines(locks)...)
		out = append(out, "")
	} else {
		body := lines[start+1 : end]
		kept := make([]string, 0, len(body))
		for _, line := range body {
			if isKeyLine(line) {
				continue
			}
			kept = append(kept, line)
		}
		// New keys go after the table's comments and before the blank lines
		// separating it from the next table.
		split := len(kept)
		for split > 0 && strings.TrimSpace(kept[split-1]) == "" {
			split--
		}
		out = append(out, lines[:start+1]...)
		out = append(out, kept[:split]...)
		out = append(out, lockLines(locks)...)
		out = append(out, kept[split:]...)
		out = append(out, lines[end:]...)
	}

	patched := strings.Join(out, "\n")
	if _, err := config.ParseConfigLenient([]byte(patched), locksHeader); err != nil {
		return "", fmt.Errorf(messages.WizardPatchInvalidFmt, err)
	}
	return patched, nil
}

// findTable returns the header line of table and the index of the first line
// after its body, or -1 when the table is absent.
func findTable(lines []string, header string) (int, int) {
	start := -1
	for i, line := range lines {
		trimmed := stripComment(line)
		if start < 0 {
			if trimmed == header {
				start = i
			}
			continue
		}
		if strings.HasPrefix(trimmed, "[") {
			return start, i
		}
	}
	if start < 0 {
		return -1, -1
	}
	return start, len(lines)
}

func lockLines(locks map[string]string) []string {
	keys := make([]string, 0, len(locks))
	for k := range locks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+" = "+strconv.Quote(locks[k]))
	}
	return lines
}

func isKeyLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#") && strings.Contains(trimmed, "=")
}

func stripComment(line string) string {
	trimmed := strings.TrimSpace(line)
	if idx := strings.Index(trimmed, "#"); idx >= 0 && strings.HasPrefix(trimmed, "[") {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	return trimmed
}
