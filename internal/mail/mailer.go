package mail

import (
	"fmt"
	"net/smtp"

	"github.com/evmarsh/blogforge-be/internal/config"
)

// Mailer relays contact-form messages to the site owner over SMTP.
type Mailer struct {
	cfg config.SMTP
}

// New creates a Mailer from SMTP configuration.
func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendContactMessage forwards a visitor's message to the configured address.
// The visitor's own email only appears in the body; the message is sent from
// and to the site owner's account.
func (m *Mailer) SendContactMessage(name, email, message string) error {
	to := m.cfg.ContactTo
	if to == "" {
		to = m.cfg.Username
	}

	body := fmt.Sprintf("Subject: Contact form message from %s\r\n\r\nName: %s\r\nEmail: %s\r\n\r\n%s\r\n",
		name, name, email, message)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
