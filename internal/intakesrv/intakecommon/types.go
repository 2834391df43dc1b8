package intakecommon

// ServerVersion is the semantic version of the intake server build.
const ServerVersion = "0.3.0"

// ApiVersion is the version of the HTTP API surface.
const ApiVersion = "v1"

// Default addresses used for workflow notifications when the config file
// leaves them unset. These mirror the registration mailbox the pharmacy
// staff already watch.
const (
	DefaultNotifyFrom = "cadastro@veroshealth.com"
	DefaultNotifyTo   = "cadastro@veroshealth.com"
)
