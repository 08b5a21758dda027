package finance

import (
	"math"
	"testing"
)

func within(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.4f, want %.4f (±%.4f)", what, got, want, tol)
	}
}

func TestLoanEMIKnownValue(t *testing.T) {
	// 50L at 8.5% over 20 years is the canonical home loan example.
	res := LoanEMI(5_000_000, 8.5, 20)
	within(t, res.EMI, 43391, 1, "EMI")
}

func TestLoanEMIInvariants(t *testing.T) {
	cases := []struct {
		principal, rate, years float64
	}{
		{100_000, 10, 5},
		{5_000_000, 8.5, 20},
		{750_000, 12.25, 7},
		{1_000_000, 6, 30},
	}
	for _, tc := range cases {
		res := LoanEMI(tc.principal, tc.rate, tc.years)
		n := tc.years * 12
		within(t, res.EMI*n, res.TotalPayment, 1e-6, "EMI*n vs TotalPayment")
		within(t, res.TotalPayment-tc.principal, res.TotalInterest, 1e-6, "interest identity")
		if res.EMI <= 0 {
			t.Fatalf("EMI = %.2f for %+v, want > 0", res.EMI, tc)
		}
	}
}

func TestLoanEMIZeroRate(t *testing.T) {
	res := LoanEMI(120_000, 0, 10)
	within(t, res.EMI, 1000, 1e-9, "zero-rate EMI")
	within(t, res.TotalInterest, 0, 1e-9, "zero-rate interest")
}

func TestLoanEMIDeterministic(t *testing.T) {
	a := LoanEMI(5_000_000, 8.5, 20)
	b := LoanEMI(5_000_000, 8.5, 20)
	if a != b {
		t.Fatalf("repeat call differs: %+v vs %+v", a, b)
	}
}

func TestAmortizationScheduleEndsAtZero(t *testing.T) {
	cases := []struct {
		principal, rate, years float64
	}{
		{100_000, 10, 5},
		{5_000_000, 8.5, 20},
		{50_000, 0, 4},
	}
	for _, tc := range cases {
		sched := AmortizationSchedule(tc.principal, tc.rate, tc.years)
		if len(sched) != int(tc.years*12) {
			t.Fatalf("schedule length = %d, want %d", len(sched), int(tc.years*12))
		}
		last := sched[len(sched)-1]
		within(t, last.Balance, 0, 0.01, "final balance")

		prev := tc.principal
		for _, row := range sched {
			if row.Balance > prev+1e-9 {
				t.Fatalf("balance increased at month %d: %.2f -> %.2f", row.Month, prev, row.Balance)
			}
			prev = row.Balance
		}
	}
}

func TestAmortizationRowDecomposition(t *testing.T) {
	sched := AmortizationSchedule(200_000, 9, 10)
	for _, row := range sched[:12] {
		within(t, row.Principal+row.Interest, row.Payment, 1e-6, "payment split")
	}
}
