package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/appdeck/internal/backend"
	"github.com/conn-castle/appdeck/internal/doctor"
	"github.com/conn-castle/appdeck/internal/messages"
)

var doctorRunner backend.Runner = backend.ExecRunner{}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, messages.DoctorCheckingHost)

			results, selected := doctor.CheckBackends(cmd.Context(), doctorRunner)
			for _, r := range results {
				printResult(out, r)
			}

			if selected == backend.Unknown {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorNoBackendSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintf(out, messages.DoctorSelectedBackendFmt, color.GreenString(selected.String()))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, r.Recommendation)
	}
}
