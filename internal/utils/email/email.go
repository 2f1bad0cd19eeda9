package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP is configured
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != "" && s.cfg.NotifyEmail != ""
}

// SendStatementNotice sends a notification that a new statement is ready
func (s *Sender) SendStatementNotice(cardName string, dueDate time.Time, statementBalance, minimumPayment float64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.NotifyEmail}
	e.Subject = fmt.Sprintf("New Statement for %s", cardName)

	body := fmt.Sprintf(
		"Your statement for %s is ready.\n\n"+
			"Statement balance: %.2f TL\n"+
			"Minimum payment: %.2f TL\n"+
			"Due date: %s\n\n"+
			"Paying only the minimum keeps the account current but accrues contractual interest on the rest.\n",
		cardName, statementBalance, minimumPayment, dueDate.Format("2006-01-02"),
	)
	e.Text = []byte(body)

	return s.send(e)
}

// SendOverdueNotice sends a warning that a statement went overdue
func (s *Sender) SendOverdueNotice(cardName string, dueDate time.Time, statementBalance, minimumPayment, paymentsReceived float64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.NotifyEmail}
	e.Subject = fmt.Sprintf("Overdue Statement for %s", cardName)

	body := fmt.Sprintf(
		"The statement for %s was due on %s and is now overdue.\n\n"+
			"Statement balance: %.2f TL\n"+
			"Minimum payment: %.2f TL\n"+
			"Payments received: %.2f TL\n\n"+
			"Default interest now applies to the unpaid minimum in addition to contractual interest.\n",
		cardName, dueDate.Format("2006-01-02"), statementBalance, minimumPayment, paymentsReceived,
	)
	e.Text = []byte(body)

	return s.send(e)
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email %q: %v", e.Subject, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infof("Email sent: %s", e.Subject)
	return nil
}
