package email

import (
	"fmt"

	"jobstreet_backend/internal/config"
	"jobstreet_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends notification mail. Implementations must be safe for
// concurrent use.
type Provider interface {
	Send(to, subject, body string) error
	SendApplicationStatus(to, jobTitle, status string) error
}

// SMTPProvider sends mail through a gomail dialer.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.SMTP.FromEmail, p.cfg.SMTP.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.SMTP.Host,
		p.cfg.SMTP.Port,
		p.cfg.SMTP.Username,
		p.cfg.SMTP.Password,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendApplicationStatus(to, jobTitle, status string) error {
	subject := fmt.Sprintf("Your application for %s was %s", jobTitle, status)
	body := fmt.Sprintf(
		"<p>Hello,</p><p>The status of your application for <b>%s</b> changed to <b>%s</b>.</p>",
		jobTitle, status,
	)
	return p.Send(to, subject, body)
}

// NoopProvider is used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, body string) error { return nil }

func (NoopProvider) SendApplicationStatus(to, jobTitle, status string) error { return nil }

// NewProvider picks the SMTP provider when a host is configured, the
// no-op otherwise.
func NewProvider(cfg *config.Config) Provider {
	if cfg.SMTP.Host == "" {
		logger.Info("smtp not configured, email notifications disabled")
		return NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}
