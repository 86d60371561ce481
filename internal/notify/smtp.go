package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/shopspring/decimal"

	"github.com/Aijazali515/AgriFarma/internal/config"
)

type SMTPNotifier struct {
	cfg config.SMTP
}

func NewSMTPNotifier(cfg config.SMTP) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host not configured")
	}
	return &SMTPNotifier{cfg: cfg}, nil
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.Sender, to, subject, body))

	addr := n.cfg.Host + ":" + n.cfg.Port
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func (n *SMTPNotifier) SendOrderConfirmation(ctx context.Context, email string, orderID uint, total decimal.Decimal, name string) error {
	if name == "" {
		name = "Customer"
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order!\n\nOrder ID: #%d\nTotal: %s\n\nWe will notify you once your order ships.\n\nAgriFarma Team",
		name, orderID, total.StringFixed(2))
	return n.send(email, fmt.Sprintf("Order Confirmation - #%d", orderID), body)
}

func (n *SMTPNotifier) SendPasswordReset(ctx context.Context, email, resetURL, name string) error {
	if name == "" {
		name = "User"
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nA password reset was requested for your account.\nReset link (valid 24 hours): %s\n\nIf you did not request this, ignore this email.\n\nAgriFarma Team",
		name, resetURL)
	return n.send(email, "Password Reset Request", body)
}

func (n *SMTPNotifier) SendConsultantStatus(ctx context.Context, email, status string) error {
	body := fmt.Sprintf(
		"Your consultant application status has been updated to: %s.\n\nAgriFarma Team", status)
	return n.send(email, "Consultant Application Update", body)
}
