package service

// Outcome labels recorded for authentication attempts.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// AuthRecorder counts authentication attempts by operation and outcome.
type AuthRecorder interface {
	RecordAuthAttempt(operation, outcome string)
}
