package usecase

import "context"

// FollowUp is a best-effort side effect attached to a primary operation
type FollowUp struct {
	Name string
	Run  func(ctx context.Context) error
}

// FollowUpOutcome reports how a follow-up ended. Callers may discard it.
type FollowUpOutcome struct {
	Name     string
	Attempts int
	Err      error
}

// Failed reports whether every attempt failed
func (o FollowUpOutcome) Failed() bool {
	return o.Err != nil
}

// FollowUpDispatcher executes follow-ups with retries and failure logging
type FollowUpDispatcher interface {
	// Run executes the follow-up before returning
	Run(ctx context.Context, followUp FollowUp) FollowUpOutcome

	// Go schedules the follow-up without waiting for it
	Go(followUp FollowUp)
}
