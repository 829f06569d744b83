package messages

// Wizard messages for the interactive selection flow.
const (
	WizardRequiresTerminal = "the wizard requires an interactive terminal; use `appdeck install` instead"

	WizardBackendNoteTitle   = "Appdeck"
	WizardBackendNoteFmt     = "Package manager: %s\nMode: %s\n\nPick applications per category. Space toggles, enter continues,\nesc goes back, ctrl+c exits."
	WizardModeLive           = "live installation"
	WizardModeDryRun         = "dry run (no changes)"
	WizardNoBackend          = "No supported package manager detected (apt, dnf, or pacman required)."
	WizardCategoryTitleFmt   = "%s (%d/%d)"
	WizardOptionLabelFmt     = "%s - %s"
	WizardConfirmInstallFmt  = "Install %d application(s) via %s?"
	WizardConfirmDryRunFmt   = "Preview install commands for %d application(s)?"
	WizardNothingSelected    = "No applications selected."
	WizardExitWithoutChanges = "Exiting without changes."

	// WizardLoadCatalogFailedFmt formats catalog loading failures.
	WizardLoadCatalogFailedFmt = "failed to load catalog: %w"
)
