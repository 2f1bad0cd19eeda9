package cardengine

import "testing"

func TestSimulateMinimumPaymentTrap_Converges(t *testing.T) {
	got := SimulateMinimumPaymentTrap(TrapInput{
		CurrentDebt:     1000,
		MinPaymentRate:  0.40,
		ContractualRate: 4.25,
		KKDFRate:        0.15,
		BSMVRate:        0.15,
	})

	if got.Months >= DefaultMaxTrapMonths {
		t.Fatalf("expected convergence, ran %d months", got.Months)
	}
	if got.Months == 0 {
		t.Fatal("expected at least one simulated month")
	}
	if got.TotalPaid < 1000 {
		t.Errorf("total paid %.2f is less than the original debt", got.TotalPaid)
	}
	last := got.MonthlyBreakdown[len(got.MonthlyBreakdown)-1]
	if last.Remaining > 1 {
		t.Errorf("final remaining %.2f, want <= 1", last.Remaining)
	}
	if len(got.MonthlyBreakdown) != got.Months {
		t.Errorf("months %d does not match breakdown length %d", got.Months, len(got.MonthlyBreakdown))
	}
}

func TestSimulateMinimumPaymentTrap_NonAmortizingStopsAtCap(t *testing.T) {
	// Minimum rate far below the interest accrual: the balance grows.
	got := SimulateMinimumPaymentTrap(TrapInput{
		CurrentDebt:     100000,
		MinPaymentRate:  0.001,
		ContractualRate: 8,
		KKDFRate:        0.15,
		BSMVRate:        0.15,
	})

	if got.Months != DefaultMaxTrapMonths {
		t.Fatalf("expected cap at %d months, got %d", DefaultMaxTrapMonths, got.Months)
	}
	last := got.MonthlyBreakdown[len(got.MonthlyBreakdown)-1]
	if last.Remaining <= 1 {
		t.Errorf("non-amortizing debt reported as paid off: remaining %.2f", last.Remaining)
	}
}

func TestSimulateMinimumPaymentTrap_CustomCap(t *testing.T) {
	got := SimulateMinimumPaymentTrap(TrapInput{
		CurrentDebt:     100000,
		MinPaymentRate:  0.001,
		ContractualRate: 8,
		KKDFRate:        0.15,
		BSMVRate:        0.15,
		MaxMonths:       12,
	})
	if got.Months != 12 {
		t.Errorf("months = %d, want 12", got.Months)
	}
}

func TestSimulateMinimumPaymentTrap_TinyDebtPaidImmediately(t *testing.T) {
	// Debt below the 50 TL floor is cleared in a single payment.
	got := SimulateMinimumPaymentTrap(TrapInput{
		CurrentDebt:     40,
		MinPaymentRate:  0.20,
		ContractualRate: 4.25,
		KKDFRate:        0.15,
		BSMVRate:        0.15,
	})
	if got.Months != 1 {
		t.Fatalf("months = %d, want 1", got.Months)
	}
	if got.TotalPaid != 40 {
		t.Errorf("total paid = %.2f, want 40", got.TotalPaid)
	}
	if got.TotalInterest != 0 {
		t.Errorf("interest on fully paid debt = %.2f, want 0", got.TotalInterest)
	}
}

func TestSimulateMinimumPaymentTrap_ZeroDebt(t *testing.T) {
	got := SimulateMinimumPaymentTrap(TrapInput{
		CurrentDebt:     0,
		MinPaymentRate:  0.20,
		ContractualRate: 4.25,
	})
	if got.Months != 0 || got.TotalPaid != 0 {
		t.Errorf("zero debt should simulate nothing, got %+v", got)
	}
}
