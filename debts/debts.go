// Package debts holds the pure arithmetic behind the debt views: outstanding
// balances, aging, oldest-first payment allocation and the dashboard chart
// buckets. Functions here take snapshots and return derived values only; the
// inputs are never mutated, so callers can re-run them on every request.
package debts

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Payment is the minimal payment information needed for balance calculations.
type Payment struct {
	Amount float64
	Date   time.Time
}

// Debt is the minimal debt information needed for balance calculations.
type Debt struct {
	ID       uuid.UUID
	Created  time.Time
	Mount    float64
	Payments []Payment
}

// amountOf guards the best-effort policy: malformed amounts (NaN, Inf,
// negative) count as zero instead of corrupting a dashboard total.
func amountOf(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Remaining returns mount minus the sum of payment amounts. The result may
// be negative when a debt was overpaid; totals floor it at zero per debt.
func Remaining(d Debt) float64 {
	paid := 0.0
	for _, p := range d.Payments {
		paid += amountOf(p.Amount)
	}
	return RoundCents(amountOf(d.Mount) - paid)
}

// Outstanding reports whether the debt still has a positive remaining balance.
func Outstanding(d Debt) bool {
	return Remaining(d) > 0
}

// lastActivity returns the debt's most recent payment date, or its creation
// date when it has no payments.
func lastActivity(d Debt) time.Time {
	last := d.Created
	for _, p := range d.Payments {
		if p.Date.After(last) {
			last = p.Date
		}
	}
	return last
}

// RoundCents rounds half away from zero to two decimals. Callers that
// accumulate monetary values should round each accumulation to keep float
// drift out of reported totals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
