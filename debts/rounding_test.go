package debts

import "testing"

func TestRoundCents(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 12.34, 12.34},
		{"half up", 0.125, 0.13},
		{"half away from zero", -0.125, -0.13},
		{"binary drift", 0.1 + 0.2, 0.3},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoundCents(tc.in); got != tc.want {
				t.Errorf("RoundCents(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// Summing per-client totals the way the dashboard does must not leak float
// drift into the grand total.
func TestRoundCentsAccumulation(t *testing.T) {
	totals := []float64{499.99, 499.99, 499.99, 0.03}

	sum := 0.0
	for _, v := range totals {
		sum = RoundCents(sum + v)
	}

	if sum != 1500.00 {
		t.Errorf("accumulated total = %v, want 1500.00", sum)
	}
}
