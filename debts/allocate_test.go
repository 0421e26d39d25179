package debts

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAllocateOldestFirst(t *testing.T) {
	oldest := uuid.New()
	middle := uuid.New()
	newest := uuid.New()

	list := []Debt{
		{ID: newest, Created: date(2024, time.March, 1), Mount: 300},
		{ID: oldest, Created: date(2024, time.January, 1), Mount: 100},
		{ID: middle, Created: date(2024, time.February, 1), Mount: 200},
	}

	// 150 covers the oldest (100) and leaves 50 on the middle one.
	allocs, err := Allocate(list, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(allocs) != 2 {
		t.Fatalf("got %d allocations, want 2", len(allocs))
	}
	if allocs[0].DebtID != oldest || allocs[0].Amount != 100 || !allocs[0].Closes {
		t.Errorf("first allocation = %+v, want oldest fully covered", allocs[0])
	}
	if allocs[1].DebtID != middle || allocs[1].Amount != 50 || allocs[1].Closes {
		t.Errorf("second allocation = %+v, want 50 on the middle debt, still open", allocs[1])
	}
}

func TestAllocateSkipsPaidDebts(t *testing.T) {
	paid := uuid.New()
	open := uuid.New()

	list := []Debt{
		{ID: paid, Created: date(2024, time.January, 1), Mount: 100,
			Payments: []Payment{{Amount: 100, Date: date(2024, time.January, 2)}}},
		{ID: open, Created: date(2024, time.February, 1), Mount: 80},
	}

	allocs, err := Allocate(list, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(allocs) != 1 || allocs[0].DebtID != open || !allocs[0].Closes {
		t.Fatalf("allocations = %+v, want only the open debt, closed", allocs)
	}
}

func TestAllocatePartialRemaining(t *testing.T) {
	id := uuid.New()
	list := []Debt{{
		ID: id, Created: date(2024, time.January, 1), Mount: 100,
		Payments: []Payment{{Amount: 40, Date: date(2024, time.January, 5)}},
	}}

	allocs, err := Allocate(list, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(allocs) != 1 || allocs[0].Amount != 60 || !allocs[0].Closes {
		t.Fatalf("allocations = %+v, want the 60 remainder, closed", allocs)
	}
}

func TestAllocateRejectsBadAmounts(t *testing.T) {
	list := []Debt{{ID: uuid.New(), Created: date(2024, time.January, 1), Mount: 100}}

	if _, err := Allocate(list, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := Allocate(list, -10); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := Allocate(list, 100.01); !errors.Is(err, ErrExceedsDebt) {
		t.Errorf("surplus amount: got %v, want ErrExceedsDebt", err)
	}
}

func TestAllocateCentRounding(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	list := []Debt{
		{ID: a, Created: date(2024, time.January, 1), Mount: 33.336},
		{ID: b, Created: date(2024, time.February, 1), Mount: 50},
	}

	allocs, err := Allocate(list, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Remaining on the first debt rounds to 33.34; the carry must be 6.66.
	if allocs[0].Amount != 33.34 {
		t.Errorf("first allocation = %v, want 33.34", allocs[0].Amount)
	}
	if allocs[1].Amount != 6.66 {
		t.Errorf("carried allocation = %v, want 6.66", allocs[1].Amount)
	}
}

func TestAllocateDoesNotMutateInput(t *testing.T) {
	list := []Debt{
		{ID: uuid.New(), Created: date(2024, time.March, 1), Mount: 300},
		{ID: uuid.New(), Created: date(2024, time.January, 1), Mount: 100},
	}
	first := list[0].ID

	if _, err := Allocate(list, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].ID != first {
		t.Fatal("input slice was reordered")
	}
}
