package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/conn-castle/appdeck/internal/backend"
	"github.com/conn-castle/appdeck/internal/catalog"
	"github.com/conn-castle/appdeck/internal/installer"
	"github.com/conn-castle/appdeck/internal/messages"
)

var (
	resolveBackendFunc  = backend.Resolve
	newOrchestratorFunc = installer.New
	errWizardBack       = errors.New("wizard back requested")
	errWizardCancelled  = errors.New("wizard cancelled")
)

// Options configures a wizard run.
type Options struct {
	// DryRun builds and shows commands without executing them.
	DryRun bool
	// Runner executes probes and install commands; defaults to ExecRunner.
	Runner backend.Runner
	// Catalog defaults to the embedded catalog.
	Catalog *catalog.Catalog
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Run starts the interactive wizard writing to stdout.
func Run(ctx context.Context, ui UI, opts Options) error {
	return RunWithWriter(ctx, ui, opts, os.Stdout)
}

// RunWithWriter starts the interactive wizard and writes user-facing output
// to out. The flow is: resolve backend, show the mode banner, pick apps per
// category (Esc steps back, Ctrl+C exits), confirm, then stream the
// installation events.
func RunWithWriter(ctx context.Context, ui UI, opts Options, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	runner := opts.Runner
	if runner == nil {
		runner = backend.ExecRunner{}
	}
	cat := opts.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.Default()
		if err != nil {
			return fmt.Errorf(messages.WizardLoadCatalogFailedFmt, err)
		}
	}

	b, err := resolveBackendFunc(ctx, runner)
	if err != nil {
		return err
	}
	logger.Debug().Stringer("backend", b).Msg("resolved backend")
	if b == backend.Unknown {
		_, _ = fmt.Fprintln(out, messages.WizardNoBackend)
		return nil
	}

	mode := messages.WizardModeLive
	if opts.DryRun {
		mode = messages.WizardModeDryRun
	}
	if err := ui.Note(messages.WizardBackendNoteTitle, fmt.Sprintf(messages.WizardBackendNoteFmt, b, mode)); err != nil {
		return exitOnAbort(err, out)
	}

	choices := NewChoices()
	if err := promptCategories(ui, cat, choices); err != nil {
		return exitOnAbort(err, out)
	}

	requests := choices.Requests(cat)
	if len(requests) == 0 {
		_, _ = fmt.Fprintln(out, messages.WizardNothingSelected)
		return nil
	}

	confirmFmt := messages.WizardConfirmInstallFmt
	if opts.DryRun {
		confirmFmt = messages.WizardConfirmDryRunFmt
	}
	proceed := true
	if err := ui.Confirm(fmt.Sprintf(confirmFmt, len(requests), b), &proceed); err != nil {
		return exitOnAbort(err, out)
	}
	if !proceed {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	orch, err := newOrchestratorFunc(runner)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, messages.RenderRunBannerFmt, len(requests), b)
	if opts.DryRun {
		_, _ = fmt.Fprint(out, messages.RenderDryRunBanner)
	}
	for e := range orch.Run(ctx, b, opts.DryRun, requests) {
		LogEvent(logger, e)
		RenderEvent(out, e)
	}
	return nil
}

// promptCategories walks the category multi-selects with back navigation.
// Esc on the first category leaves the wizard.
func promptCategories(ui UI, cat *catalog.Catalog, choices *Choices) error {
	total := len(cat.Categories)
	for i := 0; i < total; {
		category := cat.Categories[i]
		selected := choices.Selected[category.Name]
		title := fmt.Sprintf(messages.WizardCategoryTitleFmt, category.Name, i+1, total)
		err := ui.MultiSelect(title, categoryOptions(category), &selected)
		if errors.Is(err, errWizardBack) {
			if i == 0 {
				return err
			}
			i--
			continue
		}
		if err != nil {
			return err
		}
		choices.Selected[category.Name] = selected
		i++
	}
	return nil
}

// categoryOptions builds the labeled options for one category.
func categoryOptions(category catalog.Category) []Option {
	options := make([]Option, len(category.Apps))
	for i, app := range category.Apps {
		options[i] = Option{
			Label: fmt.Sprintf(messages.WizardOptionLabelFmt, app.Name, app.Description),
			Value: app.Package,
		}
	}
	return options
}

// exitOnAbort maps back/cancel aborts to a clean exit message; any other
// error propagates.
func exitOnAbort(err error, out io.Writer) error {
	if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}
	return err
}
