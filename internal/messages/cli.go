package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "appdeck"
	// RootShort is the short description for the root command.
	RootShort = "Install Linux applications by category"
	RootLong  = "Appdeck browses a catalog of applications grouped by category and installs\nselections through the native package manager (apt, dnf, or pacman)."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command usage.
	InstallUse   = "install <app|package>..."
	InstallShort = "Install the named applications without the interactive wizard"
	InstallLong  = "Install resolves each argument against the catalog (falling back to treating\nit as a raw package identifier) and installs the results sequentially."

	InstallFlagDryRun  = "Build and print install commands without executing them"
	InstallFailuresFmt = "%d of %d installation(s) failed"

	// ListUse is the list command usage.
	ListUse        = "list"
	ListShort      = "Print the application catalog grouped by category"
	ListAppLineFmt = "  %-22s %s (%s)\n"

	// DoctorUse is the doctor command usage.
	DoctorUse   = "doctor"
	DoctorShort = "Check which package managers are available on this host"

	// Flag descriptions shared across commands.
	FlagCatalog  = "Path to a catalog TOML file overriding the built-in catalog"
	FlagLogFile  = "Write a structured debug log to this file"
	FlagLogLevel = "Log level for the debug log (trace|debug|info|warn|error)"
	FlagNoColor  = "Disable colored output"
)
