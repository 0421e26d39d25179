package debts

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the per-client aggregate shown in the debt table.
type Summary struct {
	// Total is the sum of every debt's remaining balance, floored at zero
	// per debt: an overpaid debt never reduces the total.
	Total float64
	// LastModified is the most recent activity date (latest payment, or
	// creation when unpaid) across the client's outstanding debts. Zero
	// when the client has no outstanding debt.
	LastModified time.Time
	// MaxDays is the worst aging across outstanding debts: whole days
	// elapsed from a debt's last activity to the as-of date, floored at 0.
	MaxDays int
}

// Summarize aggregates one client's debts as of the given date. A zero asOf
// means now. Debts whose payments fully cover the principal are excluded
// from LastModified and MaxDays but never cause an error.
func Summarize(list []Debt, asOf time.Time) Summary {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	var s Summary
	for _, d := range list {
		remaining := Remaining(d)
		if remaining <= 0 {
			continue
		}
		s.Total = RoundCents(s.Total + remaining)

		activity := lastActivity(d)
		if activity.After(s.LastModified) {
			s.LastModified = activity
		}

		days := DaysBetween(activity, asOf)
		if days < 0 {
			days = 0
		}
		if days > s.MaxDays {
			s.MaxDays = days
		}
	}
	return s
}

// SummarizeAll folds a summary per client, isolating failures: when fetch
// errors for one client that client gets a zero Summary and the rest of the
// aggregation proceeds.
func SummarizeAll(clientIDs []uuid.UUID, fetch func(uuid.UUID) ([]Debt, error), asOf time.Time) map[uuid.UUID]Summary {
	out := make(map[uuid.UUID]Summary, len(clientIDs))
	for _, id := range clientIDs {
		list, err := fetch(id)
		if err != nil {
			out[id] = Summary{}
			continue
		}
		out[id] = Summarize(list, asOf)
	}
	return out
}
