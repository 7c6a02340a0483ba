// Package report renders builds as stat sheets and diffs two sheets.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
)

const labelWidth = 16

// Stat is one line of the statistics block. Limit is only meaningful when
// HasLimit is set.
type Stat struct {
	Name     string
	Value    int
	Limit    int
	HasLimit bool
}

// Within reports whether the stat respects its limit.
func (s Stat) Within() bool {
	return !s.HasLimit || s.Value <= s.Limit
}

// Stats lists the statistics shown under the slot table.
func Stats(b assembly.Build) []Stat {
	return []Stat{
		{Name: messages.ReportStatAP, Value: b.AP()},
		{Name: messages.ReportStatWeight, Value: b.Weight()},
		{Name: messages.ReportStatLoad, Value: b.Load(), Limit: b.LoadLimit(), HasLimit: true},
		{Name: messages.ReportStatArmsLoad, Value: b.ArmsLoad(), Limit: b.ArmsLoadLimit(), HasLimit: true},
		{Name: messages.ReportStatENLoad, Value: b.ENLoad(), Limit: b.ENOutput(), HasLimit: true},
		{Name: messages.ReportStatENSurplus, Value: b.ENSurplus()},
		{Name: messages.ReportStatCoam, Value: b.Coam()},
	}
}

// Sheet renders b with colored within/over flags. Colors follow fatih/color,
// so they disappear when output is not a terminal.
func Sheet(b assembly.Build) string {
	return render(b, true)
}

// PlainSheet renders b without colors.
func PlainSheet(b assembly.Build) string {
	return render(b, false)
}

func render(b assembly.Build, colored bool) string {
	var sb strings.Builder
	for _, sp := range b.Parts() {
		_, _ = fmt.Fprintf(&sb, "%-*s %s\n", labelWidth, sp.Slot, sp.Part)
	}
	sb.WriteString("\n")
	for _, st := range Stats(b) {
		if !st.HasLimit {
			_, _ = fmt.Fprintf(&sb, "%-*s %8d\n", labelWidth, st.Name, st.Value)
			continue
		}
		_, _ = fmt.Fprintf(&sb, "%-*s %8d / %-8d %s\n", labelWidth, st.Name, st.Value, st.Limit, flag(st.Within(), colored))
	}
	return sb.String()
}

func flag(within bool, colored bool) string {
	switch {
	case within && colored:
		return color.GreenString(messages.ReportWithinLabel)
	case within:
		return messages.ReportWithinLabel
	case colored:
		return color.RedString(messages.ReportOverLabel)
	default:
		return messages.ReportOverLabel
	}
}
