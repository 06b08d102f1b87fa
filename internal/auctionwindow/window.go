package auctionwindow

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
)

// Phase is the auction lifecycle phase derived from the window
// timestamps and the current clock. It is never stored.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseActive     Phase = "active"
	PhaseEnded      Phase = "ended"
)

// Window holds the auction start/end timestamps plus the activation
// flag. It is a value type owned by whoever hosts the auction; there is
// deliberately no package-level instance so independent auctions can
// coexist in one process.
type Window struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

// Validate checks a proposed start/end pair. The window is rejected
// outright when end <= start; callers must not apply any part of a
// rejected update.
func Validate(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("window end %s must be after start %s: %w",
			end.Format(time.RFC3339), start.Format(time.RFC3339), auctionerrors.ErrInvalidWindow)
	}
	return nil
}

// PhaseAt derives the lifecycle phase from the timestamps alone.
// The boundaries are inclusive: a bid at exactly StartDate or EndDate
// falls in the active phase.
func (w Window) PhaseAt(now time.Time) Phase {
	if now.Before(w.StartDate) {
		return PhaseNotStarted
	}
	if now.After(w.EndDate) {
		return PhaseEnded
	}
	return PhaseActive
}

// ActiveAt reports whether bidding is allowed at the given instant.
// The stored activation flag can close an auction early even while the
// clock is inside the window.
func (w Window) ActiveAt(now time.Time) bool {
	return w.IsActive && w.PhaseAt(now) == PhaseActive
}

// RemainingAt returns the countdown duration for display: time until
// start before the window opens, time until end while it is open, and
// zero once it has passed.
func (w Window) RemainingAt(now time.Time) time.Duration {
	switch w.PhaseAt(now) {
	case PhaseNotStarted:
		return w.StartDate.Sub(now)
	case PhaseActive:
		return w.EndDate.Sub(now)
	default:
		return 0
	}
}
