package study

import (
	core "github.com/abhisek/kanacards/internal/study"
)

// fetchedMsg carries a finished enrichment lookup back to the event loop.
type fetchedMsg core.Fetched

// settledMsg is sent when a deferred display swap is due.
type settledMsg core.Settled

// flashExpiredMsg clears a transient notice.
type flashExpiredMsg struct {
	id int
}
