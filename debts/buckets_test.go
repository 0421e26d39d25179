package debts

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMonthlyBucketsNewAndOld(t *testing.T) {
	// Two clients, one debt each, both created in March with principal 500.
	list := []Debt{
		{ID: uuid.New(), Created: date(2024, time.March, 10), Mount: 500},
		{ID: uuid.New(), Created: date(2024, time.March, 20), Mount: 500},
	}

	buckets := MonthlyBuckets(list, 2024)

	if buckets[2].NewDebts != 1000 {
		t.Errorf("March NewDebts = %v, want 1000", buckets[2].NewDebts)
	}
	if buckets[2].OldDebts != 0 {
		t.Errorf("March OldDebts = %v, want 0", buckets[2].OldDebts)
	}
	if buckets[3].OldDebts != 1000 {
		t.Errorf("April OldDebts = %v, want 1000", buckets[3].OldDebts)
	}
	if buckets[3].NewDebts != 0 {
		t.Errorf("April NewDebts = %v, want 0", buckets[3].NewDebts)
	}
}

func TestMonthlyBucketsPaid(t *testing.T) {
	list := []Debt{{
		ID:      uuid.New(),
		Created: date(2024, time.January, 5),
		Mount:   300,
		Payments: []Payment{
			{Amount: 100, Date: date(2024, time.January, 20)},
			{Amount: 50, Date: date(2024, time.April, 2)},
			{Amount: 25, Date: date(2023, time.December, 30)}, // other year, ignored
		},
	}}

	buckets := MonthlyBuckets(list, 2024)

	if buckets[0].PaidDebts != 100 {
		t.Errorf("January PaidDebts = %v, want 100", buckets[0].PaidDebts)
	}
	if buckets[3].PaidDebts != 50 {
		t.Errorf("April PaidDebts = %v, want 50", buckets[3].PaidDebts)
	}
	// Remaining 125 stays in NewDebts for January and OldDebts afterwards.
	if buckets[0].NewDebts != 125 {
		t.Errorf("January NewDebts = %v, want remaining 125", buckets[0].NewDebts)
	}
	if buckets[5].OldDebts != 125 {
		t.Errorf("June OldDebts = %v, want 125", buckets[5].OldDebts)
	}
}

func TestMonthlyBucketsFullyPaidNotOld(t *testing.T) {
	list := []Debt{{
		ID:      uuid.New(),
		Created: date(2024, time.February, 1),
		Mount:   200,
		Payments: []Payment{
			{Amount: 200, Date: date(2024, time.February, 15)},
		},
	}}

	buckets := MonthlyBuckets(list, 2024)
	if buckets[1].NewDebts != 0 {
		t.Errorf("paid debt NewDebts = %v, want 0", buckets[1].NewDebts)
	}
	for m := 2; m < 12; m++ {
		if buckets[m].OldDebts != 0 {
			t.Fatalf("paid debt leaked into OldDebts[%d] = %v", m, buckets[m].OldDebts)
		}
	}
}

func TestMonthlyBucketsPriorYearDebtIsOldAllYear(t *testing.T) {
	list := []Debt{{
		ID:      uuid.New(),
		Created: date(2023, time.November, 1),
		Mount:   400,
	}}

	buckets := MonthlyBuckets(list, 2024)
	for m := 0; m < 12; m++ {
		if buckets[m].OldDebts != 400 {
			t.Fatalf("OldDebts[%d] = %v, want 400", m, buckets[m].OldDebts)
		}
		if buckets[m].NewDebts != 0 {
			t.Fatalf("NewDebts[%d] = %v, want 0", m, buckets[m].NewDebts)
		}
	}
}

func TestTermOf(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 0}, {time.April, 0},
		{time.May, 1}, {time.August, 1},
		{time.September, 2}, {time.December, 2},
	}
	for _, tc := range cases {
		if got := TermOf(tc.month); got != tc.want {
			t.Errorf("TermOf(%v) = %d, want %d", tc.month, got, tc.want)
		}
	}
}

func TestTermBuckets(t *testing.T) {
	var buckets [12]MonthBucket
	for m := range buckets {
		buckets[m].NewDebts = float64(m + 1)
	}

	second := TermBuckets(buckets, 1)
	for i := 0; i < MonthsPerTerm; i++ {
		if want := float64(5 + i); second[i].NewDebts != want {
			t.Errorf("term bucket %d = %v, want %v", i, second[i].NewDebts, want)
		}
	}

	if out := TermBuckets(buckets, 7); out != [MonthsPerTerm]MonthBucket{} {
		t.Errorf("out-of-range term must be empty, got %v", out)
	}
}
