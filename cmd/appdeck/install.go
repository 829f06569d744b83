package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/appdeck/internal/backend"
	"github.com/conn-castle/appdeck/internal/installer"
	"github.com/conn-castle/appdeck/internal/messages"
	"github.com/conn-castle/appdeck/internal/wizard"
)

var (
	resolveBackendFunc  = backend.Resolve
	newOrchestratorFunc = installer.New
)

var installRunner backend.Runner = backend.ExecRunner{}

func newInstallCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cat, err := loadCatalog(flags.catalogPath)
			if err != nil {
				return err
			}
			requests := cat.Requests(args)

			b, err := resolveBackendFunc(cmd.Context(), installRunner)
			if err != nil {
				return err
			}
			activeLogger.Debug().Stringer("backend", b).Msg("resolved backend")

			orch, err := newOrchestratorFunc(installRunner)
			if err != nil {
				return err
			}

			if dryRun {
				_, _ = fmt.Fprint(out, messages.RenderDryRunBanner)
			}
			var completed installer.Event
			for e := range orch.Run(cmd.Context(), b, dryRun, requests) {
				wizard.LogEvent(activeLogger, e)
				wizard.RenderEvent(out, e)
				if e.Kind == installer.EventRunCompleted {
					completed = e
				}
			}
			if completed.Failed > 0 {
				return fmt.Errorf(messages.InstallFailuresFmt, completed.Failed, completed.Attempted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.InstallFlagDryRun)

	return cmd
}
