package debts

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeScenario(t *testing.T) {
	// One debt of 1000 created 2024-01-10, a 400 payment on 2024-01-20,
	// evaluated as of 2024-03-01.
	list := []Debt{{
		ID:      uuid.New(),
		Created: date(2024, time.January, 10),
		Mount:   1000,
		Payments: []Payment{
			{Amount: 400, Date: date(2024, time.January, 20)},
		},
	}}

	s := Summarize(list, date(2024, time.March, 1))

	if s.Total != 600 {
		t.Errorf("Total = %v, want 600", s.Total)
	}
	if !s.LastModified.Equal(date(2024, time.January, 20)) {
		t.Errorf("LastModified = %v, want 2024-01-20", s.LastModified)
	}
	if want := DaysBetween(date(2024, time.January, 20), date(2024, time.March, 1)); s.MaxDays != want {
		t.Errorf("MaxDays = %d, want %d", s.MaxDays, want)
	}
}

func TestSummarizeOverpaidDebtContributesZero(t *testing.T) {
	list := []Debt{{
		ID:      uuid.New(),
		Created: date(2024, time.January, 1),
		Mount:   100,
		Payments: []Payment{
			{Amount: 80, Date: date(2024, time.January, 5)},
			{Amount: 80, Date: date(2024, time.January, 10)},
		},
	}}

	s := Summarize(list, date(2024, time.June, 1))
	if s.Total != 0 {
		t.Errorf("overpaid debt must contribute 0, got %v", s.Total)
	}
	if !s.LastModified.IsZero() {
		t.Errorf("paid debt must not drive LastModified, got %v", s.LastModified)
	}
	if s.MaxDays != 0 {
		t.Errorf("paid debt must not age, got %d", s.MaxDays)
	}
}

func TestSummarizeNoPayments(t *testing.T) {
	created := date(2024, time.February, 1)
	list := []Debt{{ID: uuid.New(), Created: created, Mount: 250}}

	s := Summarize(list, date(2024, time.February, 15))
	if s.Total != 250 {
		t.Errorf("Total = %v, want 250", s.Total)
	}
	if !s.LastModified.Equal(created) {
		t.Errorf("LastModified = %v, want the creation date %v", s.LastModified, created)
	}
	if s.MaxDays != 14 {
		t.Errorf("MaxDays = %d, want 14", s.MaxDays)
	}
}

func TestSummarizeMaxDaysMonotone(t *testing.T) {
	list := []Debt{
		{ID: uuid.New(), Created: date(2024, time.January, 1), Mount: 100},
		{ID: uuid.New(), Created: date(2024, time.March, 1), Mount: 50,
			Payments: []Payment{{Amount: 10, Date: date(2024, time.March, 10)}}},
	}

	prev := -1
	for _, asOf := range []time.Time{
		date(2024, time.January, 2),
		date(2024, time.February, 1),
		date(2024, time.June, 1),
		date(2025, time.January, 1),
	} {
		s := Summarize(list, asOf)
		if s.MaxDays < prev {
			t.Fatalf("MaxDays decreased from %d to %d at %v", prev, s.MaxDays, asOf)
		}
		prev = s.MaxDays
	}
}

func TestSummarizeBestEffortNumbers(t *testing.T) {
	list := []Debt{{
		ID:      uuid.New(),
		Created: date(2024, time.January, 1),
		Mount:   math.NaN(),
	}, {
		ID:      uuid.New(),
		Created: date(2024, time.January, 1),
		Mount:   100,
		Payments: []Payment{
			{Amount: math.NaN(), Date: date(2024, time.January, 5)},
			{Amount: -50, Date: date(2024, time.January, 6)},
		},
	}}

	s := Summarize(list, date(2024, time.February, 1))
	if s.Total != 100 {
		t.Errorf("malformed amounts must count as zero, Total = %v, want 100", s.Total)
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	payments := []Payment{
		{Amount: 30, Date: date(2024, time.March, 1)},
		{Amount: 10, Date: date(2024, time.February, 1)},
	}
	list := []Debt{{ID: uuid.New(), Created: date(2024, time.January, 1), Mount: 100, Payments: payments}}

	Summarize(list, date(2024, time.June, 1))
	if !payments[0].Date.Equal(date(2024, time.March, 1)) || payments[0].Amount != 30 {
		t.Fatal("input payments were mutated")
	}
}

func TestSummarizeAllIsolatesFailures(t *testing.T) {
	okID := uuid.New()
	badID := uuid.New()

	fetch := func(id uuid.UUID) ([]Debt, error) {
		if id == badID {
			return nil, errors.New("boom")
		}
		return []Debt{{ID: uuid.New(), Created: date(2024, time.January, 1), Mount: 75}}, nil
	}

	out := SummarizeAll([]uuid.UUID{okID, badID}, fetch, date(2024, time.February, 1))
	if out[okID].Total != 75 {
		t.Errorf("ok client Total = %v, want 75", out[okID].Total)
	}
	if out[badID] != (Summary{}) {
		t.Errorf("failing client must default to a zero summary, got %+v", out[badID])
	}
}
