package report

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

// DefaultDiffMaxLines caps diff output when the caller passes a non-positive limit.
const DefaultDiffMaxLines = 40

// Diff returns a unified diff of the plain sheets of from and to, capped at
// maxLines. The second result reports truncation. Identical builds give "".
func Diff(fromName string, toName string, from assembly.Build, to assembly.Build, maxLines int) (string, bool) {
	return renderTruncatedUnifiedDiff(fromName, toName, PlainSheet(from), PlainSheet(to), maxLines)
}

// TextDiff is Diff for arbitrary text, such as a config file before and after an edit.
func TextDiff(fromName string, toName string, from string, to string, maxLines int) (string, bool) {
	return renderTruncatedUnifiedDiff(fromName, toName, from, to, maxLines)
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(truncated, fmt.Sprintf(messages.ReportDiffTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func normalizeDiffMaxLines(maxLines int) int {
	if maxLines <= 0 {
		return DefaultDiffMaxLines
	}
	return maxLines
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
