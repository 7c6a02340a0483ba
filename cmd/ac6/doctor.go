package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/doctor"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/warnings"
)

var checkConfigWarnings = warnings.CheckConfig

func newDoctorCmd(root *rootOptions) *cobra.Command {
	var noise string
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Long:  messages.DoctorLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root.configFile())

			// 1. Config, falling back to a partial config on validation errors.
			allResults, cfg := doctor.CheckConfig(root.configPath)

			// 2. Catalog, store and profile probes need a config.
			var cat *catalog.Catalog
			if cfg != nil {
				var catalogResults []doctor.Result
				catalogResults, cat = doctor.CheckCatalog(cfg)
				allResults = append(allResults, catalogResults...)
				allResults = append(allResults, doctor.CheckStore(cmd.Context(), cfg, cat)...)
				if cat != nil {
					allResults = append(allResults, doctor.CheckProfiles(cfg, cat)...)
				}
			}

			for _, r := range allResults {
				printResult(out, r)
			}
			hasFail := doctor.HasFailure(allResults)

			// 3. Static warnings. Only meaningful once config and catalog loaded.
			var warningList []warnings.Warning
			if cfg != nil && cat != nil {
				_, _ = fmt.Fprintln(out, messages.DoctorWarningSystemHeader)
				warningList = warnings.ApplyNoiseControl(checkConfigWarnings(cfg, cat), noise)
			}
			if len(warningList) > 0 {
				for _, w := range warningList {
					_, _ = fmt.Fprintln(out, w.String())
					_, _ = fmt.Fprintln(out)
				}
				hasFail = true
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	cmd.Flags().StringVar(&noise, "noise", warnings.NoiseModeDefault, messages.DoctorNoiseFlagUsage)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
