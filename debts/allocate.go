package debts

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrExceedsDebt   = errors.New("payment amount exceeds total outstanding debt")
)

// Allocation records how much of a lump payment lands on one debt.
type Allocation struct {
	DebtID uuid.UUID
	Amount float64
	// Closes is true when the allocation covers the debt's full remaining
	// balance, so the debt can be marked paid.
	Closes bool
}

// Allocate applies one lump amount against a client's debts, oldest
// outstanding debt first. Any surplus after fully covering a debt carries
// over to the next-oldest until the amount is exhausted. Amounts are rounded
// to cents; an amount exceeding the total outstanding is rejected whole
// rather than partially applied.
func Allocate(list []Debt, amount float64) ([]Allocation, error) {
	amount = RoundCents(amount)
	if !(amount > 0) {
		return nil, ErrInvalidAmount
	}

	open := make([]Debt, 0, len(list))
	total := 0.0
	for _, d := range list {
		if r := Remaining(d); r > 0 {
			open = append(open, d)
			total = RoundCents(total + r)
		}
	}
	if amount > total {
		return nil, ErrExceedsDebt
	}

	// Oldest first; equal creation dates keep their input order.
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Created.Before(open[j].Created)
	})

	var allocations []Allocation
	left := amount
	for _, d := range open {
		if left <= 0 {
			break
		}
		remaining := Remaining(d)
		applied := remaining
		if left < remaining {
			applied = left
		}
		applied = RoundCents(applied)
		allocations = append(allocations, Allocation{
			DebtID: d.ID,
			Amount: applied,
			Closes: applied >= remaining,
		})
		left = RoundCents(left - applied)
	}
	return allocations, nil
}
