package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateCard creates a new credit card in the database
func (r *Repository) CreateCard(card *models.CreditCard) error {
	query := `
		INSERT INTO finance.credit_cards
			(card_name, bank_name, last_4_digits, card_network, color, total_limit,
			 cash_advance_limit, cut_off_day, payment_due_day, contractual_rate,
			 default_rate, cash_advance_rate, min_payment_rate, rewards_points,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		card.CardName, card.BankName, card.Last4Digits, card.CardNetwork, card.Color,
		card.TotalLimit, card.CashAdvanceLimit, card.CutOffDay, card.PaymentDueDay,
		card.ContractualRate, card.DefaultRate, card.CashAdvanceRate,
		card.MinPaymentRate, card.RewardsPoints).
		Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// FindCardByID retrieves a credit card by id
func (r *Repository) FindCardByID(id int64) (*models.CreditCard, error) {
	card := &models.CreditCard{}
	query := `
		SELECT id, card_name, bank_name, last_4_digits, card_network, color,
			total_limit, cash_advance_limit, cut_off_day, payment_due_day,
			contractual_rate, default_rate, cash_advance_rate, min_payment_rate,
			rewards_points, created_at, updated_at
		FROM finance.credit_cards
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&card.ID, &card.CardName, &card.BankName, &card.Last4Digits, &card.CardNetwork,
		&card.Color, &card.TotalLimit, &card.CashAdvanceLimit, &card.CutOffDay,
		&card.PaymentDueDay, &card.ContractualRate, &card.DefaultRate,
		&card.CashAdvanceRate, &card.MinPaymentRate, &card.RewardsPoints,
		&card.CreatedAt, &card.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("card not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	return card, nil
}

// ListCards retrieves all credit cards
func (r *Repository) ListCards() ([]models.CreditCard, error) {
	query := `
		SELECT id, card_name, bank_name, last_4_digits, card_network, color,
			total_limit, cash_advance_limit, cut_off_day, payment_due_day,
			contractual_rate, default_rate, cash_advance_rate, min_payment_rate,
			rewards_points, created_at, updated_at
		FROM finance.credit_cards
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []models.CreditCard
	for rows.Next() {
		var card models.CreditCard
		if err := rows.Scan(
			&card.ID, &card.CardName, &card.BankName, &card.Last4Digits, &card.CardNetwork,
			&card.Color, &card.TotalLimit, &card.CashAdvanceLimit, &card.CutOffDay,
			&card.PaymentDueDay, &card.ContractualRate, &card.DefaultRate,
			&card.CashAdvanceRate, &card.MinPaymentRate, &card.RewardsPoints,
			&card.CreatedAt, &card.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// CreateTransaction records a card transaction
func (r *Repository) CreateTransaction(txn *models.CardTransaction) error {
	query := `
		INSERT INTO finance.card_transactions
			(credit_card_id, type, description, merchant, amount, remaining_amount,
			 total_installments, is_cash_advance, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query,
		txn.CreditCardID, txn.Type, txn.Description, txn.Merchant, txn.Amount,
		txn.RemainingAmount, txn.TotalInstallments, txn.IsCashAdvance, txn.TransactionDate).
		Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransactionsByCard retrieves all transactions for a card
func (r *Repository) ListTransactionsByCard(cardID int64) ([]models.CardTransaction, error) {
	query := `
		SELECT id, credit_card_id, type, description, COALESCE(merchant, ''), amount,
			remaining_amount, total_installments, is_cash_advance, transaction_date, created_at
		FROM finance.card_transactions
		WHERE credit_card_id = $1
		ORDER BY transaction_date`
	rows, err := r.db.Query(query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.CardTransaction
	for rows.Next() {
		var txn models.CardTransaction
		if err := rows.Scan(&txn.ID, &txn.CreditCardID, &txn.Type, &txn.Description,
			&txn.Merchant, &txn.Amount, &txn.RemainingAmount, &txn.TotalInstallments,
			&txn.IsCashAdvance, &txn.TransactionDate, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// SumChargesInPeriod totals non-refund transaction amounts for a card
// within [from, to], refunds subtracted
func (r *Repository) SumChargesInPeriod(cardID int64, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'REFUND' THEN -amount ELSE amount END), 0)
		FROM finance.card_transactions
		WHERE credit_card_id = $1 AND transaction_date >= $2 AND transaction_date <= $3`
	var total float64
	if err := r.db.QueryRow(query, cardID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum charges: %w", err)
	}
	return total, nil
}

// CreatePayment records a card payment
func (r *Repository) CreatePayment(payment *models.CardPayment) error {
	query := `
		INSERT INTO finance.card_payments
			(credit_card_id, statement_id, amount, description, payment_date, created_at)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query,
		payment.CreditCardID, payment.StatementID, payment.Amount,
		payment.Description, payment.PaymentDate).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListPaymentsByCard retrieves all payments for a card
func (r *Repository) ListPaymentsByCard(cardID int64) ([]models.CardPayment, error) {
	query := `
		SELECT id, credit_card_id, COALESCE(statement_id, 0), amount, description,
			payment_date, created_at
		FROM finance.card_payments
		WHERE credit_card_id = $1
		ORDER BY payment_date`
	rows, err := r.db.Query(query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.CardPayment
	for rows.Next() {
		var payment models.CardPayment
		if err := rows.Scan(&payment.ID, &payment.CreditCardID, &payment.StatementID,
			&payment.Amount, &payment.Description, &payment.PaymentDate,
			&payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// SumPaymentsInPeriod totals payments for a card within [from, to]
func (r *Repository) SumPaymentsInPeriod(cardID int64, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM finance.card_payments
		WHERE credit_card_id = $1 AND payment_date >= $2 AND payment_date <= $3`
	var total float64
	if err := r.db.QueryRow(query, cardID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}

// CreateStatement persists a statement record
func (r *Repository) CreateStatement(stmt *models.CardStatement) error {
	query := `
		INSERT INTO finance.card_statements
			(credit_card_id, statement_date, due_date, period_start, period_end,
			 previous_balance, new_charges, interest_charged, tax_charged,
			 payments_received, statement_balance, minimum_payment, status,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		stmt.CreditCardID, stmt.StatementDate, stmt.DueDate, stmt.PeriodStart,
		stmt.PeriodEnd, stmt.PreviousBalance, stmt.NewCharges, stmt.InterestCharged,
		stmt.TaxCharged, stmt.PaymentsReceived, stmt.StatementBalance,
		stmt.MinimumPayment, stmt.Status).
		Scan(&stmt.ID, &stmt.CreatedAt, &stmt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}
	return nil
}

// FindLatestStatement retrieves the most recent statement for a card
func (r *Repository) FindLatestStatement(cardID int64) (*models.CardStatement, error) {
	stmt := &models.CardStatement{}
	query := `
		SELECT id, credit_card_id, statement_date, due_date, period_start, period_end,
			previous_balance, new_charges, interest_charged, tax_charged,
			payments_received, statement_balance, minimum_payment, status,
			created_at, updated_at
		FROM finance.card_statements
		WHERE credit_card_id = $1
		ORDER BY statement_date DESC
		LIMIT 1`
	err := r.db.QueryRow(query, cardID).Scan(
		&stmt.ID, &stmt.CreditCardID, &stmt.StatementDate, &stmt.DueDate,
		&stmt.PeriodStart, &stmt.PeriodEnd, &stmt.PreviousBalance, &stmt.NewCharges,
		&stmt.InterestCharged, &stmt.TaxCharged, &stmt.PaymentsReceived,
		&stmt.StatementBalance, &stmt.MinimumPayment, &stmt.Status,
		&stmt.CreatedAt, &stmt.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest statement: %w", err)
	}
	return stmt, nil
}

// ListOpenStatements retrieves all statements still in OPEN status
func (r *Repository) ListOpenStatements() ([]models.CardStatement, error) {
	query := `
		SELECT id, credit_card_id, statement_date, due_date, period_start, period_end,
			previous_balance, new_charges, interest_charged, tax_charged,
			payments_received, statement_balance, minimum_payment, status,
			created_at, updated_at
		FROM finance.card_statements
		WHERE status = 'OPEN'
		ORDER BY due_date`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open statements: %w", err)
	}
	defer rows.Close()

	var statements []models.CardStatement
	for rows.Next() {
		var stmt models.CardStatement
		if err := rows.Scan(&stmt.ID, &stmt.CreditCardID, &stmt.StatementDate,
			&stmt.DueDate, &stmt.PeriodStart, &stmt.PeriodEnd, &stmt.PreviousBalance,
			&stmt.NewCharges, &stmt.InterestCharged, &stmt.TaxCharged,
			&stmt.PaymentsReceived, &stmt.StatementBalance, &stmt.MinimumPayment,
			&stmt.Status, &stmt.CreatedAt, &stmt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		statements = append(statements, stmt)
	}
	return statements, rows.Err()
}

// UpdateStatementStatus sets a statement's status
func (r *Repository) UpdateStatementStatus(id int64, status string) error {
	query := `
		UPDATE finance.card_statements
		SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.Exec(query, id, status); err != nil {
		return fmt.Errorf("failed to update statement status: %w", err)
	}
	return nil
}

// AddStatementPayment increases a statement's received payments total
func (r *Repository) AddStatementPayment(id int64, amount float64) error {
	query := `
		UPDATE finance.card_statements
		SET payments_received = payments_received + $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.Exec(query, id, amount); err != nil {
		return fmt.Errorf("failed to add statement payment: %w", err)
	}
	return nil
}

// ListAssets retrieves all assets
func (r *Repository) ListAssets() ([]models.Asset, error) {
	query := `
		SELECT id, name, type, currency, amount, COALESCE(unit_price, 0), created_at, updated_at
		FROM finance.assets
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(&asset.ID, &asset.Name, &asset.Type, &asset.Currency,
			&asset.Amount, &asset.UnitPrice, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// ListDebts retrieves all conventional debts
func (r *Repository) ListDebts() ([]models.Debt, error) {
	query := `
		SELECT id, name, type, remaining_balance, COALESCE(remaining_installments, 0),
			interest_rate, created_at, updated_at
		FROM finance.debts
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var debt models.Debt
		if err := rows.Scan(&debt.ID, &debt.Name, &debt.Type, &debt.RemainingBalance,
			&debt.RemainingInstallments, &debt.InterestRate, &debt.CreatedAt,
			&debt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}
	return debts, rows.Err()
}

// ListSubscriptions retrieves all subscriptions
func (r *Repository) ListSubscriptions() ([]models.Subscription, error) {
	query := `
		SELECT id, name, amount, billing_day, created_at
		FROM finance.subscriptions
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Amount, &sub.BillingDay,
			&sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// CreateInsight persists a generated insight
func (r *Repository) CreateInsight(insight *models.Insight) error {
	query := `
		INSERT INTO finance.insights (title, content, type, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, insight.Title, insight.Content, insight.Type).
		Scan(&insight.ID, &insight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create insight: %w", err)
	}
	return nil
}

// HasRecentInsight reports whether an insight with the given title was
// created within the last 24 hours
func (r *Repository) HasRecentInsight(title string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM finance.insights
			WHERE title = $1 AND created_at >= CURRENT_TIMESTAMP - INTERVAL '24 hours'
		)`
	var exists bool
	if err := r.db.QueryRow(query, title).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recent insight: %w", err)
	}
	return exists, nil
}

// ListInsights retrieves the most recent insights, newest first
func (r *Repository) ListInsights(limit int) ([]models.Insight, error) {
	query := `
		SELECT id, title, content, type, created_at
		FROM finance.insights
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	defer rows.Close()

	var list []models.Insight
	for rows.Next() {
		var insight models.Insight
		if err := rows.Scan(&insight.ID, &insight.Title, &insight.Content,
			&insight.Type, &insight.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		list = append(list, insight)
	}
	return list, rows.Err()
}
