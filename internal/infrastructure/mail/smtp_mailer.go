package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig datos del servidor SMTP.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	ResetURL string
}

// SMTPMailer envía el correo de recuperación por SMTP con gomail.
type SMTPMailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, token string, redirectURL *string) error {
	link, err := ResetLink(m.cfg.ResetURL, redirectURL, token)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", resetSubject)
	msg.SetBody("text/html", resetBody(link))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
