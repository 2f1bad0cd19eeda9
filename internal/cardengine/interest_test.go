package cardengine

import "testing"

func TestCalculateInterest_WorkedExample(t *testing.T) {
	// 10000 * 4.25 * 30 / 3000 = 425.00 pure interest.
	got := CalculateInterest(InterestInput{
		Principal:   10000,
		MonthlyRate: 4.25,
		Days:        30,
		KKDFRate:    0.15,
		BSMVRate:    0.15,
	})

	want := InterestResult{Interest: 425.00, KKDF: 63.75, BSMV: 63.75, TotalCost: 552.50}
	if got != want {
		t.Errorf("CalculateInterest = %+v, want %+v", got, want)
	}
}

func TestCalculateInterest_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		in   InterestInput
	}{
		{"negative principal", InterestInput{Principal: -5, MonthlyRate: 4, Days: 30, KKDFRate: 0.15, BSMVRate: 0.15}},
		{"zero principal", InterestInput{Principal: 0, MonthlyRate: 4, Days: 30, KKDFRate: 0.15, BSMVRate: 0.15}},
		{"zero rate", InterestInput{Principal: 1000, MonthlyRate: 0, Days: 30, KKDFRate: 0.15, BSMVRate: 0.15}},
		{"zero days", InterestInput{Principal: 1000, MonthlyRate: 4, Days: 0, KKDFRate: 0.15, BSMVRate: 0.15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateInterest(tt.in); got != (InterestResult{}) {
				t.Errorf("expected zero result, got %+v", got)
			}
		})
	}
}

func TestCalculateInterest_PartialPeriod(t *testing.T) {
	// 15 days charges half of the 30-day interest.
	full := CalculateInterest(InterestInput{Principal: 10000, MonthlyRate: 4, Days: 30, KKDFRate: 0.15, BSMVRate: 0.15})
	half := CalculateInterest(InterestInput{Principal: 10000, MonthlyRate: 4, Days: 15, KKDFRate: 0.15, BSMVRate: 0.15})
	if half.Interest*2 != full.Interest {
		t.Errorf("15-day interest %.2f is not half of 30-day interest %.2f", half.Interest, full.Interest)
	}
}

func TestAnalyzeInterestForPeriod(t *testing.T) {
	base := PeriodAnalysisInput{
		StatementBalance: 10000,
		MinimumPayment:   2000,
		ContractualRate:  4.25,
		DefaultRate:      5.25,
		Days:             30,
		KKDFRate:         0.15,
		BSMVRate:         0.15,
	}

	t.Run("full payment", func(t *testing.T) {
		in := base
		in.PaymentMade = 10000
		got := AnalyzeInterestForPeriod(in)
		if got.PaymentStatus != PaymentFull {
			t.Fatalf("status = %s, want FULL", got.PaymentStatus)
		}
		if got.TotalInterest != (InterestResult{}) {
			t.Errorf("expected zero interest on full payment, got %+v", got.TotalInterest)
		}
	})

	t.Run("minimum payment", func(t *testing.T) {
		in := base
		in.PaymentMade = 2000
		got := AnalyzeInterestForPeriod(in)
		if got.PaymentStatus != PaymentMinimum {
			t.Fatalf("status = %s, want MINIMUM", got.PaymentStatus)
		}
		// Contractual interest on 8000 only.
		want := ContractualInterest(8000, 4.25, 30, 0.15, 0.15)
		if got.ContractualInterest != want {
			t.Errorf("contractual = %+v, want %+v", got.ContractualInterest, want)
		}
		if got.DefaultInterest != (InterestResult{}) {
			t.Errorf("expected no default interest, got %+v", got.DefaultInterest)
		}
	})

	t.Run("below minimum", func(t *testing.T) {
		in := base
		in.PaymentMade = 500
		got := AnalyzeInterestForPeriod(in)
		if got.PaymentStatus != PaymentBelowMinimum {
			t.Fatalf("status = %s, want BELOW_MINIMUM", got.PaymentStatus)
		}
		wantContractual := ContractualInterest(9500, 4.25, 30, 0.15, 0.15)
		wantDefault := DefaultInterest(1500, 5.25, 30, 0.15, 0.15)
		if got.ContractualInterest != wantContractual {
			t.Errorf("contractual = %+v, want %+v", got.ContractualInterest, wantContractual)
		}
		if got.DefaultInterest != wantDefault {
			t.Errorf("default = %+v, want %+v", got.DefaultInterest, wantDefault)
		}
		if got.TotalInterest.Interest != round2(wantContractual.Interest+wantDefault.Interest) {
			t.Errorf("total interest %.2f does not sum components", got.TotalInterest.Interest)
		}
	})

	t.Run("no payment", func(t *testing.T) {
		in := base
		in.PaymentMade = 0
		got := AnalyzeInterestForPeriod(in)
		if got.PaymentStatus != PaymentNone {
			t.Fatalf("status = %s, want NO_PAYMENT", got.PaymentStatus)
		}
		wantContractual := ContractualInterest(10000, 4.25, 30, 0.15, 0.15)
		wantDefault := DefaultInterest(2000, 5.25, 30, 0.15, 0.15)
		if got.ContractualInterest != wantContractual || got.DefaultInterest != wantDefault {
			t.Errorf("no-payment interest mismatch: %+v / %+v", got.ContractualInterest, got.DefaultInterest)
		}
	})
}

func TestCashAdvanceInterest_AccruesForGivenDays(t *testing.T) {
	// Cash advances accrue from the transaction date; 10 days of accrual.
	got := CashAdvanceInterest(3000, 5.92, 10, 0.15, 0.15)
	want := round2(3000 * 5.92 * 10 / 3000)
	if got.Interest != want {
		t.Errorf("cash advance interest = %.2f, want %.2f", got.Interest, want)
	}
}
