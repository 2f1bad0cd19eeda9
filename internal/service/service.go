package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/cache"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/cardengine"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/config"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/insights"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/lending"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/repository"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/riskscore"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/utils/email"
)

// Default card rates used when the caller leaves them unset, matching
// typical Turkish card contracts.
const (
	defaultContractualRate = 4.42
	defaultDefaultRate     = 5.42
	defaultCashAdvanceRate = 5.92
)

// Service handles business logic: it validates input at the boundary,
// runs the pure engines, and persists their results.
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	rates  *cache.RatesCache
	mailer *email.Sender
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, rates *cache.RatesCache, mailer *email.Sender) *Service {
	return &Service{repo: repo, log: log, config: cfg, rates: rates, mailer: mailer}
}

// CreateCard validates and stores a new credit card, filling contract
// defaults for any rate left unset
func (s *Service) CreateCard(card *models.CreditCard) error {
	if card.TotalLimit <= 0 {
		return fmt.Errorf("total limit must be positive, got %.2f", card.TotalLimit)
	}
	if card.CutOffDay < 1 || card.CutOffDay > 31 {
		return fmt.Errorf("cut-off day must be within 1-31, got %d", card.CutOffDay)
	}
	if card.PaymentDueDay < 1 || card.PaymentDueDay > 31 {
		return fmt.Errorf("payment due day must be within 1-31, got %d", card.PaymentDueDay)
	}

	if card.ContractualRate <= 0 {
		card.ContractualRate = defaultContractualRate
	}
	if card.DefaultRate <= 0 {
		card.DefaultRate = defaultDefaultRate
	}
	if card.CashAdvanceRate <= 0 {
		card.CashAdvanceRate = defaultCashAdvanceRate
	}
	if card.CashAdvanceLimit <= 0 {
		card.CashAdvanceLimit = card.TotalLimit * 0.5
	}
	if card.MinPaymentRate <= 0 {
		card.MinPaymentRate = cardengine.MinPaymentRateLow
		if card.TotalLimit > cardengine.HighLimitThreshold {
			card.MinPaymentRate = cardengine.MinPaymentRateHigh
		}
	}

	if err := s.repo.CreateCard(card); err != nil {
		return err
	}
	s.log.Infof("Card created: %s (%s)", card.CardName, card.BankName)
	return nil
}

// ListCards returns all cards
func (s *Service) ListCards() ([]models.CreditCard, error) {
	return s.repo.ListCards()
}

// RecordTransaction validates and stores a card transaction
func (s *Service) RecordTransaction(txn *models.CardTransaction) error {
	if txn.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %.2f", txn.Amount)
	}
	switch txn.Type {
	case models.TransactionPurchase, models.TransactionRefund, models.TransactionCashAdvance, models.TransactionFee:
	default:
		return fmt.Errorf("unknown transaction type: %s", txn.Type)
	}
	if _, err := s.repo.FindCardByID(txn.CreditCardID); err != nil {
		return err
	}

	if txn.TotalInstallments <= 0 {
		txn.TotalInstallments = 1
	}
	txn.RemainingAmount = txn.Amount
	if txn.Type == models.TransactionCashAdvance {
		txn.IsCashAdvance = true
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now()
	}

	if err := s.repo.CreateTransaction(txn); err != nil {
		return err
	}
	s.log.Infof("Transaction recorded on card %d: %s %.2f", txn.CreditCardID, txn.Type, txn.Amount)
	return nil
}

// RecordPayment stores a payment, applies it to the card's latest
// statement, and re-evaluates the statement's status
func (s *Service) RecordPayment(payment *models.CardPayment) error {
	if payment.Amount <= 0 {
		return fmt.Errorf("payment amount must be positive, got %.2f", payment.Amount)
	}
	if _, err := s.repo.FindCardByID(payment.CreditCardID); err != nil {
		return err
	}
	if payment.Description == "" {
		payment.Description = "Manuel Ödeme"
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	stmt, err := s.repo.FindLatestStatement(payment.CreditCardID)
	if err != nil {
		return err
	}
	if stmt != nil && stmt.Status == string(cardengine.StatementOpen) {
		payment.StatementID = stmt.ID
	}

	if err := s.repo.CreatePayment(payment); err != nil {
		return err
	}

	if payment.StatementID != 0 {
		if err := s.repo.AddStatementPayment(payment.StatementID, payment.Amount); err != nil {
			return err
		}
		status := cardengine.StatementStatus(
			stmt.StatementBalance,
			stmt.PaymentsReceived+payment.Amount,
			stmt.MinimumPayment,
			stmt.DueDate,
			payment.PaymentDate,
		)
		if string(status) != stmt.Status {
			if err := s.repo.UpdateStatementStatus(stmt.ID, string(status)); err != nil {
				return err
			}
			s.log.Infof("Statement %d moved to %s after payment", stmt.ID, status)
		}
	}

	s.log.Infof("Payment recorded on card %d: %.2f", payment.CreditCardID, payment.Amount)
	return nil
}

// cardActivity loads a card with its transactions and payments
func (s *Service) cardActivity(cardID int64) (models.CardWithActivity, error) {
	card, err := s.repo.FindCardByID(cardID)
	if err != nil {
		return models.CardWithActivity{}, err
	}
	txns, err := s.repo.ListTransactionsByCard(cardID)
	if err != nil {
		return models.CardWithActivity{}, err
	}
	payments, err := s.repo.ListPaymentsByCard(cardID)
	if err != nil {
		return models.CardWithActivity{}, err
	}
	return models.CardWithActivity{Card: *card, Transactions: txns, Payments: payments}, nil
}

// CardSummary assembles the dashboard view of a single card
func (s *Service) CardSummary(cardID int64, now time.Time) (*models.CardSummary, error) {
	activity, err := s.cardActivity(cardID)
	if err != nil {
		return nil, err
	}
	card := activity.Card

	debt := riskscore.CardDebt(activity)
	utilization := 0.0
	if card.TotalLimit > 0 {
		utilization = debt / card.TotalLimit * 100
	}

	summary := &models.CardSummary{
		ID:                 card.ID,
		CardName:           card.CardName,
		BankName:           card.BankName,
		Last4Digits:        card.Last4Digits,
		Color:              card.Color,
		TotalLimit:         card.TotalLimit,
		CurrentDebt:        debt,
		AvailableLimit:     cardengine.AvailableLimit(card.TotalLimit, debt),
		UtilizationPercent: utilization,
		WarningLevel:       string(cardengine.WarningLevelForUtilization(utilization)),
		Status:             string(cardengine.StatementOpen),
	}

	stmt, err := s.repo.FindLatestStatement(cardID)
	if err != nil {
		return nil, err
	}
	if stmt != nil {
		summary.StatementBalance = stmt.StatementBalance
		summary.MinimumPayment = stmt.MinimumPayment
		summary.DaysUntilDue = cardengine.DaysUntilDue(stmt.DueDate, now)
		summary.Status = stmt.Status
	}
	return summary, nil
}

// PreviewPayment projects how a payment would be allocated without
// committing anything
func (s *Service) PreviewPayment(cardID int64, amount float64) (*cardengine.PaymentPreview, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %.2f", amount)
	}
	activity, err := s.cardActivity(cardID)
	if err != nil {
		return nil, err
	}
	card := activity.Card
	debt := riskscore.CardDebt(activity)

	stmt, err := s.repo.FindLatestStatement(cardID)
	if err != nil {
		return nil, err
	}

	in := previewBuckets(activity, stmt, debt)
	in.PaymentAmount = amount
	if stmt == nil {
		in.MinimumPayment = cardengine.CalculateMinimumPayment(card.TotalLimit, debt, card.MinPaymentRate)
	}
	in.ContractualRate = card.ContractualRate
	in.KKDFRate = s.config.KKDFRate
	in.BSMVRate = s.config.BSMVRate

	preview := cardengine.PreviewPayment(in)
	return &preview, nil
}

// previewBuckets partitions a card's current debt into the waterfall
// balances for a preview. Cash advances get their own bucket; since the
// waterfall retires them last, the outstanding advance portion is
// whatever debt remains, up to the advance total. The billed and
// post-statement buckets cover only the rest, so the buckets together
// never exceed the debt and an overpayment surfaces as Remainder.
func previewBuckets(activity models.CardWithActivity, stmt *models.CardStatement, debt float64) cardengine.PreviewInput {
	var advances float64
	for _, txn := range activity.Transactions {
		if txn.IsCashAdvance {
			advances += txn.Amount
		}
	}
	cashAdvance := math.Min(advances, debt)
	nonAdvanceDebt := debt - cashAdvance

	in := cardengine.PreviewInput{
		CurrentDebt:        debt,
		CashAdvanceBalance: cashAdvance,
	}
	if stmt == nil {
		in.StatementBalance = nonAdvanceDebt
		return in
	}

	var postStatement float64
	for _, txn := range activity.Transactions {
		if txn.Type != models.TransactionRefund && !txn.IsCashAdvance && txn.TransactionDate.After(stmt.StatementDate) {
			postStatement += txn.Amount
		}
	}
	in.PostStatementCharges = math.Min(postStatement, nonAdvanceDebt)
	in.StatementBalance = nonAdvanceDebt - in.PostStatementCharges
	in.InterestAndTaxAccrued = math.Min(stmt.InterestCharged+stmt.TaxCharged, in.StatementBalance)
	in.MinimumPayment = stmt.MinimumPayment
	return in
}

// GenerateStatement closes the current billing cycle for a card: it
// derives the period from the cut-off day, analyzes the previous
// period's payment behavior for interest, and persists the new
// statement
func (s *Service) GenerateStatement(cardID int64, now time.Time) (*models.CardStatement, error) {
	card, err := s.repo.FindCardByID(cardID)
	if err != nil {
		return nil, err
	}
	return s.generateStatementAt(card, cardengine.NextStatementDate(card.CutOffDay, now), now)
}

// GenerateDueStatements closes the billing cycle for every card whose
// cut-off day is today and that has not been billed for it yet. It is
// called by the nightly scheduler run.
func (s *Service) GenerateDueStatements(now time.Time) (int, error) {
	cards, err := s.repo.ListCards()
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, card := range cards {
		cutOff := cardengine.AdjustedDate(card.CutOffDay, int(now.Month()), now.Year())
		if cutOff.Day() != now.Day() {
			continue
		}
		latest, err := s.repo.FindLatestStatement(card.ID)
		if err != nil {
			return generated, err
		}
		if latest != nil && !latest.StatementDate.Before(cutOff) {
			continue
		}
		if _, err := s.generateStatementAt(&card, cutOff, now); err != nil {
			s.log.Errorf("Statement generation failed for card %d: %v", card.ID, err)
			continue
		}
		generated++
	}
	return generated, nil
}

func (s *Service) generateStatementAt(card *models.CreditCard, statementDate, now time.Time) (*models.CardStatement, error) {
	previous, err := s.repo.FindLatestStatement(card.ID)
	if err != nil {
		return nil, err
	}

	var previousBalance, interestCharged, taxCharged float64
	if previous != nil {
		previousBalance = previous.StatementBalance
		analysis := cardengine.AnalyzeInterestForPeriod(cardengine.PeriodAnalysisInput{
			StatementBalance: previous.StatementBalance,
			MinimumPayment:   previous.MinimumPayment,
			PaymentMade:      previous.PaymentsReceived,
			ContractualRate:  card.ContractualRate,
			DefaultRate:      card.DefaultRate,
			Days:             30,
			KKDFRate:         s.config.KKDFRate,
			BSMVRate:         s.config.BSMVRate,
		})
		interestCharged = analysis.TotalInterest.Interest
		taxCharged = analysis.TotalInterest.KKDF + analysis.TotalInterest.BSMV
	}

	record := cardengine.BuildStatement(cardengine.StatementInput{
		CutOffDay:      card.CutOffDay,
		PaymentDueDay:  card.PaymentDueDay,
		TotalLimit:     card.TotalLimit,
		MinPaymentRate: card.MinPaymentRate,
		StatementDate:  statementDate,
		Now:            now,
	})

	charges, err := s.repo.SumChargesInPeriod(card.ID, record.PeriodStart, record.PeriodEnd)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.SumPaymentsInPeriod(card.ID, record.PeriodStart, record.PeriodEnd)
	if err != nil {
		return nil, err
	}

	record = cardengine.BuildStatement(cardengine.StatementInput{
		CutOffDay:               card.CutOffDay,
		PaymentDueDay:           card.PaymentDueDay,
		TotalLimit:              card.TotalLimit,
		MinPaymentRate:          card.MinPaymentRate,
		PreviousBalance:         previousBalance,
		PeriodTransactionsTotal: charges,
		InterestCharged:         interestCharged,
		TaxCharged:              taxCharged,
		PaymentsInPeriod:        payments,
		StatementDate:           statementDate,
		Now:                     now,
	})

	stmt := &models.CardStatement{
		CreditCardID:     card.ID,
		StatementDate:    record.StatementDate,
		DueDate:          record.DueDate,
		PeriodStart:      record.PeriodStart,
		PeriodEnd:        record.PeriodEnd,
		PreviousBalance:  record.PreviousBalance,
		NewCharges:       record.NewCharges,
		InterestCharged:  record.InterestCharged,
		TaxCharged:       record.TaxCharged,
		PaymentsReceived: 0,
		StatementBalance: record.StatementBalance,
		MinimumPayment:   record.MinimumPayment,
		Status:           string(record.Status),
	}
	if err := s.repo.CreateStatement(stmt); err != nil {
		return nil, err
	}
	s.log.Infof("Statement generated for card %d: balance=%.2f minimum=%.2f due=%s",
		card.ID, stmt.StatementBalance, stmt.MinimumPayment, stmt.DueDate.Format("2006-01-02"))

	if s.mailer != nil && s.mailer.Enabled() && stmt.StatementBalance > 0 {
		if err := s.mailer.SendStatementNotice(card.CardName, stmt.DueDate, stmt.StatementBalance, stmt.MinimumPayment); err != nil {
			s.log.Warnf("Statement notice not sent: %v", err)
		}
	}
	return stmt, nil
}

// SweepStatementStatuses re-evaluates every open statement against the
// clock and persists any transitions. It returns the number of
// statements that changed status.
func (s *Service) SweepStatementStatuses(now time.Time) (int, error) {
	open, err := s.repo.ListOpenStatements()
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, stmt := range open {
		status := cardengine.StatementStatus(
			stmt.StatementBalance, stmt.PaymentsReceived, stmt.MinimumPayment,
			stmt.DueDate, now,
		)
		if string(status) == stmt.Status {
			continue
		}
		if err := s.repo.UpdateStatementStatus(stmt.ID, string(status)); err != nil {
			return changed, err
		}
		changed++
		s.log.Infof("Statement %d moved to %s", stmt.ID, status)

		if status == cardengine.StatementOverdue && s.mailer != nil && s.mailer.Enabled() {
			card, err := s.repo.FindCardByID(stmt.CreditCardID)
			if err != nil {
				s.log.Warnf("Overdue notice skipped, card lookup failed: %v", err)
				continue
			}
			if err := s.mailer.SendOverdueNotice(card.CardName, stmt.DueDate,
				stmt.StatementBalance, stmt.MinimumPayment, stmt.PaymentsReceived); err != nil {
				s.log.Warnf("Overdue notice not sent: %v", err)
			}
		}
	}
	return changed, nil
}

// SimulateTrap runs the minimum-payment trap simulation for a card's
// current debt, or for an explicit debt amount when cardID is zero
func (s *Service) SimulateTrap(cardID int64, in cardengine.TrapInput) (*cardengine.TrapSimulationResult, error) {
	if cardID != 0 {
		activity, err := s.cardActivity(cardID)
		if err != nil {
			return nil, err
		}
		in.CurrentDebt = riskscore.CardDebt(activity)
		if in.MinPaymentRate <= 0 {
			in.MinPaymentRate = activity.Card.MinPaymentRate
		}
		if in.ContractualRate <= 0 {
			in.ContractualRate = activity.Card.ContractualRate
		}
	}
	if in.CurrentDebt < 0 {
		return nil, fmt.Errorf("debt must not be negative, got %.2f", in.CurrentDebt)
	}
	if in.MinPaymentRate <= 0 || in.MinPaymentRate > 1 {
		return nil, fmt.Errorf("minimum payment rate must be within (0,1], got %v", in.MinPaymentRate)
	}
	if in.ContractualRate <= 0 {
		return nil, fmt.Errorf("contractual rate must be positive, got %v", in.ContractualRate)
	}
	if in.KKDFRate <= 0 {
		in.KKDFRate = s.config.KKDFRate
	}
	if in.BSMVRate <= 0 {
		in.BSMVRate = s.config.BSMVRate
	}

	result := cardengine.SimulateMinimumPaymentTrap(in)
	return &result, nil
}

// RiskAnalysis scores the user's overall financial position
func (s *Service) RiskAnalysis(ctx context.Context) (*riskscore.Analysis, error) {
	assets, debts, cards, rates, err := s.loadPositions(ctx)
	if err != nil {
		return nil, err
	}
	analysis := riskscore.Calculate(assets, debts, rates, cards)
	return &analysis, nil
}

// NetWorth values all assets at current market rates and nets debts
func (s *Service) NetWorth(ctx context.Context) (*lending.NetWorth, error) {
	assets, err := s.repo.ListAssets()
	if err != nil {
		return nil, err
	}
	debts, err := s.repo.ListDebts()
	if err != nil {
		return nil, err
	}
	rates, err := s.rates.GetMarketRates(ctx)
	if err != nil {
		return nil, err
	}
	worth := lending.CalculateNetWorth(assets, debts, rates)
	return &worth, nil
}

// LoanSchedule builds an annuity repayment plan
func (s *Service) LoanSchedule(principal, monthlyRate float64, installments int) (*lending.Schedule, error) {
	schedule, err := lending.CalculateSchedule(principal, monthlyRate, installments, s.config.KKDFRate, s.config.BSMVRate)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// RefreshInsights regenerates the insight feed and persists findings
// not already raised in the last 24 hours
func (s *Service) RefreshInsights(ctx context.Context) (int, error) {
	assets, debts, cards, rates, err := s.loadPositions(ctx)
	if err != nil {
		return 0, err
	}
	subs, err := s.repo.ListSubscriptions()
	if err != nil {
		return 0, err
	}

	generated := insights.Generate(insights.Input{
		Assets:        assets,
		Debts:         debts,
		Subscriptions: subs,
		Cards:         cards,
		Rates:         rates,
	})

	created := 0
	for _, insight := range generated {
		recent, err := s.repo.HasRecentInsight(insight.Title)
		if err != nil {
			return created, err
		}
		if recent {
			continue
		}
		if err := s.repo.CreateInsight(&insight); err != nil {
			return created, err
		}
		created++
	}
	s.log.Infof("Insights refreshed: %d generated, %d new", len(generated), created)
	return created, nil
}

// Insights returns the latest persisted insights
func (s *Service) Insights(limit int) ([]models.Insight, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListInsights(limit)
}

// MarketRates returns the current rate table
func (s *Service) MarketRates(ctx context.Context) (*models.MarketRates, error) {
	rates, err := s.rates.GetMarketRates(ctx)
	if err != nil {
		return nil, err
	}
	return &rates, nil
}

func (s *Service) loadPositions(ctx context.Context) ([]models.Asset, []models.Debt, []models.CardWithActivity, models.MarketRates, error) {
	assets, err := s.repo.ListAssets()
	if err != nil {
		return nil, nil, nil, models.MarketRates{}, err
	}
	debts, err := s.repo.ListDebts()
	if err != nil {
		return nil, nil, nil, models.MarketRates{}, err
	}
	cardList, err := s.repo.ListCards()
	if err != nil {
		return nil, nil, nil, models.MarketRates{}, err
	}
	cards := make([]models.CardWithActivity, 0, len(cardList))
	for _, card := range cardList {
		activity, err := s.cardActivity(card.ID)
		if err != nil {
			return nil, nil, nil, models.MarketRates{}, err
		}
		cards = append(cards, activity)
	}
	rates, err := s.rates.GetMarketRates(ctx)
	if err != nil {
		return nil, nil, nil, models.MarketRates{}, err
	}
	return assets, debts, cards, rates, nil
}
