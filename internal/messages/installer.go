package messages

// Backend and installer messages.
const (
	// BackendRunnerRequired indicates process execution is unavailable.
	BackendRunnerRequired = "backend: probe runner is required"
	// BackendNoCommandFmt formats the missing-command error for a backend.
	BackendNoCommandFmt = "no install command for backend %q"

	// InstallerRunnerRequired indicates the orchestrator has no way to run commands.
	InstallerRunnerRequired = "installer: command runner is required"
	// InstallerInvalidPackageIDFmt formats the rejection of an unsafe package id.
	InstallerInvalidPackageIDFmt = "invalid package id %q"
	// InstallerLaunchFailedFmt formats a command that could not be started,
	// as opposed to one that ran and exited non-zero.
	InstallerLaunchFailedFmt = "launch failed: %v"

	// Render formats for the installation event stream.
	RenderStartedFmt   = "(%d/%d) Installing %s...\n"
	RenderCommandFmt   = "  command: %s\n"
	RenderDryRunFmt    = "%s %s: would execute command (dry-run)\n"
	RenderSucceededFmt = "%s %s installed successfully\n"
	RenderFailedFmt    = "%s failed to install %s\n"
	RenderStderrFmt    = "  %s\n"
	RenderUnknownFmt   = "%s %s: no supported package manager detected\n"
	RenderCompletedFmt = "Done: %d attempted, %d succeeded, %d failed\n"
	RenderGlyphOK      = "✓"
	RenderGlyphFail    = "✗"
	RenderGlyphInfo    = "ℹ"
	RenderDryRunBanner = "Dry-run mode: commands are shown but never executed.\n"
	RenderRunBannerFmt = "Installing %d application(s) via %s\n"
)
