package service

import (
	"testing"
	"time"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/cardengine"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/riskscore"
)

func TestPreviewBuckets_CashAdvanceOverpayment(t *testing.T) {
	activity := models.CardWithActivity{
		Card: models.CreditCard{ID: 1, TotalLimit: 20000},
		Transactions: []models.CardTransaction{
			{Type: models.TransactionCashAdvance, Amount: 1000, IsCashAdvance: true},
		},
	}
	debt := riskscore.CardDebt(activity)
	if debt != 1000 {
		t.Fatalf("debt = %v, want 1000", debt)
	}

	in := previewBuckets(activity, nil, debt)
	if in.CashAdvanceBalance != 1000 {
		t.Errorf("CashAdvanceBalance = %v, want 1000", in.CashAdvanceBalance)
	}
	if in.StatementBalance != 0 {
		t.Errorf("StatementBalance = %v, want 0 (advance is not billed principal)", in.StatementBalance)
	}

	in.PaymentAmount = 2000
	preview := cardengine.PreviewPayment(in)
	if preview.Allocation.CashAdvance != 1000 {
		t.Errorf("CashAdvance allocation = %v, want 1000", preview.Allocation.CashAdvance)
	}
	if preview.Allocation.CurrentPrincipal != 0 {
		t.Errorf("CurrentPrincipal allocation = %v, want 0", preview.Allocation.CurrentPrincipal)
	}
	if preview.Allocation.TotalAllocated != 1000 {
		t.Errorf("TotalAllocated = %v, want 1000", preview.Allocation.TotalAllocated)
	}
	if preview.Allocation.Remainder != 1000 {
		t.Errorf("Remainder = %v, want 1000 (overpayment must be reported)", preview.Allocation.Remainder)
	}
	if preview.RemainingDebt != 0 {
		t.Errorf("RemainingDebt = %v, want 0", preview.RemainingDebt)
	}
}

func TestPreviewBuckets_PartitionWithStatement(t *testing.T) {
	cutOff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stmt := &models.CardStatement{
		StatementDate:    cutOff,
		StatementBalance: 552,
		MinimumPayment:   110.40,
		InterestCharged:  40,
		TaxCharged:       12,
	}
	activity := models.CardWithActivity{
		Card: models.CreditCard{ID: 1, TotalLimit: 20000},
		Transactions: []models.CardTransaction{
			{Type: models.TransactionPurchase, Amount: 500, TransactionDate: cutOff.AddDate(0, 0, -10)},
			{Type: models.TransactionPurchase, Amount: 200, TransactionDate: cutOff.AddDate(0, 0, 5)},
			{Type: models.TransactionCashAdvance, Amount: 300, IsCashAdvance: true, TransactionDate: cutOff.AddDate(0, 0, 7)},
		},
	}
	debt := riskscore.CardDebt(activity)
	if debt != 1000 {
		t.Fatalf("debt = %v, want 1000", debt)
	}

	in := previewBuckets(activity, stmt, debt)
	if in.CashAdvanceBalance != 300 {
		t.Errorf("CashAdvanceBalance = %v, want 300", in.CashAdvanceBalance)
	}
	if in.PostStatementCharges != 200 {
		t.Errorf("PostStatementCharges = %v, want 200 (advances excluded)", in.PostStatementCharges)
	}
	if in.StatementBalance != 500 {
		t.Errorf("StatementBalance = %v, want 500", in.StatementBalance)
	}
	if in.InterestAndTaxAccrued != 52 {
		t.Errorf("InterestAndTaxAccrued = %v, want 52", in.InterestAndTaxAccrued)
	}
	if total := in.StatementBalance + in.PostStatementCharges + in.CashAdvanceBalance; total != debt {
		t.Errorf("bucket capacity = %v, want %v (must partition the debt)", total, debt)
	}
	if in.MinimumPayment != 110.40 {
		t.Errorf("MinimumPayment = %v, want 110.40", in.MinimumPayment)
	}
}

func TestPreviewBuckets_PartiallyRepaidAdvance(t *testing.T) {
	activity := models.CardWithActivity{
		Card: models.CreditCard{ID: 1, TotalLimit: 20000},
		Transactions: []models.CardTransaction{
			{Type: models.TransactionCashAdvance, Amount: 1000, IsCashAdvance: true},
		},
		Payments: []models.CardPayment{
			{Amount: 600},
		},
	}
	debt := riskscore.CardDebt(activity)
	if debt != 400 {
		t.Fatalf("debt = %v, want 400", debt)
	}

	in := previewBuckets(activity, nil, debt)
	if in.CashAdvanceBalance != 400 {
		t.Errorf("CashAdvanceBalance = %v, want 400 (netted by payments)", in.CashAdvanceBalance)
	}
	if in.StatementBalance != 0 {
		t.Errorf("StatementBalance = %v, want 0", in.StatementBalance)
	}
}
