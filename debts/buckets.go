package debts

import "time"

// MonthBucket holds the three bar-chart series for one calendar month.
type MonthBucket struct {
	// NewDebts sums remaining balances of debts created in the month.
	NewDebts float64
	// PaidDebts sums payment amounts dated in the month, regardless of
	// which month the debt originated.
	PaidDebts float64
	// OldDebts sums remaining balances of still-outstanding debts created
	// strictly before the month, within the same year.
	OldDebts float64
}

// MonthsPerTerm fixes the chart paging: three four-month terms per year
// (Jan-Apr, May-Aug, Sep-Dec).
const MonthsPerTerm = 4

// MonthlyBuckets aggregates all debts into the 12 monthly buckets of the
// target year. Callers pass every client's debts flattened; per-client
// grouping does not affect the chart.
func MonthlyBuckets(list []Debt, year int) [12]MonthBucket {
	var buckets [12]MonthBucket

	for _, d := range list {
		remaining := Remaining(d)
		contribution := remaining
		if contribution < 0 {
			contribution = 0
		}

		if d.Created.Year() == year {
			created := int(d.Created.Month()) - 1
			buckets[created].NewDebts = RoundCents(buckets[created].NewDebts + contribution)

			if remaining > 0 {
				for m := created + 1; m < 12; m++ {
					buckets[m].OldDebts = RoundCents(buckets[m].OldDebts + contribution)
				}
			}
		} else if d.Created.Year() < year && remaining > 0 {
			for m := 0; m < 12; m++ {
				buckets[m].OldDebts = RoundCents(buckets[m].OldDebts + contribution)
			}
		}

		for _, p := range d.Payments {
			if p.Date.Year() == year {
				m := int(p.Date.Month()) - 1
				buckets[m].PaidDebts = RoundCents(buckets[m].PaidDebts + amountOf(p.Amount))
			}
		}
	}
	return buckets
}

// TermOf returns the zero-based four-month term containing the month:
// 0 for Jan-Apr, 1 for May-Aug, 2 for Sep-Dec.
func TermOf(month time.Month) int {
	return (int(month) - 1) / MonthsPerTerm
}

// TermBuckets extracts the four monthly buckets of one term.
func TermBuckets(buckets [12]MonthBucket, term int) [MonthsPerTerm]MonthBucket {
	var out [MonthsPerTerm]MonthBucket
	if term < 0 || term > 2 {
		return out
	}
	copy(out[:], buckets[term*MonthsPerTerm:(term+1)*MonthsPerTerm])
	return out
}
