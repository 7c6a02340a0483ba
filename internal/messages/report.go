package messages

// Messages for stat sheets and diffs.
const (
	ReportStatAP        = "AP"
	ReportStatWeight    = "Weight"
	ReportStatLoad      = "Load"
	ReportStatArmsLoad  = "Arms load"
	ReportStatENLoad    = "EN load"
	ReportStatENSurplus = "EN surplus"
	ReportStatCoam      = "COAM"

	ReportWithinLabel = "ok"
	ReportOverLabel   = "over"

	ReportDiffTruncatedFmt = "... (truncated to %d lines; rerun with --max-lines <n> to see more)"
)
