package messages

// Doctor messages for environment checks.
const (
	DoctorCheckingHost = "Checking package managers...\n"

	DoctorCheckNameBackend = "Backend"

	DoctorBackendFoundFmt   = "%s is available"
	DoctorBackendMissingFmt = "%s not found"
	DoctorBackendProbeHint  = "Install apt, dnf, or pacman to use appdeck."

	DoctorSelectedBackendFmt = "Selected backend: %s\n"
	DoctorNoBackendSummary   = "No supported package manager detected."
	DoctorFailureError       = "environment check failed"

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
)
