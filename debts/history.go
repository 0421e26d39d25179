package debts

import "sort"

// SplitHistory orders a debt's payments for display: the most recent payment
// is shown inline, and the rest go into a collapsible panel newest first.
// The input slice is left untouched.
func SplitHistory(payments []Payment) (latest *Payment, earlier []Payment) {
	if len(payments) == 0 {
		return nil, nil
	}

	sorted := make([]Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	last := sorted[len(sorted)-1]
	latest = &last

	// All but the last, reversed: most recent of the remainder first.
	for i := len(sorted) - 2; i >= 0; i-- {
		earlier = append(earlier, sorted[i])
	}
	return latest, earlier
}
