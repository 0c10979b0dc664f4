package infra

import (
	"fmt"
	"net/smtp"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends plain-text notification e-mails.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	host string
	port int
	from string
	auth smtp.Auth
}

func NewMailer(cfg *config.Config) Mailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &smtpMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		from: cfg.SMTPFrom,
		auth: auth,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	return e.Send(fmt.Sprintf("%s:%d", m.host, m.port), m.auth)
}
