package tetris

import (
	"time"

	"golang.org/x/time/rate"
)

// Phase is the game's top-level mode.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseActive
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DefaultInputInterval is the minimum spacing between accepted inputs in the
// waiting and active phases.
const DefaultInputInterval = 50 * time.Millisecond

// Outcome tells the input source what happened to an input event.
type Outcome int

const (
	// OutcomeIgnored: the action has no meaning in the current phase, or
	// the event was a key release.
	OutcomeIgnored Outcome = iota
	// OutcomeDropped: the event arrived inside the rate-limit interval.
	OutcomeDropped
	// OutcomeHandled: the action was applied (possibly as a rejected move).
	OutcomeHandled
	// OutcomeQuit: the player asked to terminate; the caller should stop
	// delivering input and shut down.
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeDropped:
		return "dropped"
	case OutcomeHandled:
		return "handled"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// inputLimiter admits at most one event per interval, measured from the
// last admitted event. Rejected events do not restart the interval.
type inputLimiter struct {
	limiter *rate.Limiter
}

func newInputLimiter(interval time.Duration) *inputLimiter {
	if interval <= 0 {
		return &inputLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	// A bucket of one token refilled once per interval.
	return &inputLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// allow reports whether an event arriving at now is admitted.
func (l *inputLimiter) allow(now time.Time) bool {
	return l.limiter.AllowN(now, 1)
}
