package service

// Registration outcomes reported to MetricsRecorder.
const (
	OutcomeRegistered     = "registered"
	OutcomeAlreadyLinked  = "already_linked"
	OutcomeDuplicateName  = "duplicate_name"
	OutcomeDuplicateEmail = "duplicate_email"
	OutcomeInvalid        = "invalid"
	OutcomeError          = "error"
)

// MetricsRecorder receives identity events worth counting.
type MetricsRecorder interface {
	RecordRegistration(outcome string)
	RecordAuthFailure(reason string)
}
