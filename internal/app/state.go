package app

// LoadState tracks one fetch-driven state machine:
// Idle -> Loading -> (Ready | Failed). Starting a new fetch moves back to
// Loading from any state.
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// ServingsDirection names the two serving-count adjustments.
type ServingsDirection string

const (
	ServingsIncrease ServingsDirection = "increase"
	ServingsDecrease ServingsDirection = "decrease"
)
