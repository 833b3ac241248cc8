package orchestrator

import "errors"

var (
	errNoPendingConfirmation = errors.New("no pending confirmation for session")
	errConfirmationMismatch  = errors.New("tool_call_id does not match pending confirmation")
	errCommitFailed          = errors.New("turn commit failed after confirmation")
)
