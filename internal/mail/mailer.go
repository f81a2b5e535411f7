package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shopcore/backend/internal/config"
)

// Mailer sends transactional mail. Implementations report delivery failures
// synchronously; callers decide whether a failure is fatal.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer delivers mail over plain SMTP with STARTTLS.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
	}
}

func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	subject := "Your password reset token"
	body := fmt.Sprintf(`<div style="border: 1px solid black; padding: 20px; font-family: sans-serif; line-height: 2; font-size: 20px;">
<h2>Hello!</h2>
<p>Your password reset token is here. This link is valid for one hour.</p>
<p><a href="%s">Click here to reset your password</a></p>
</div>`, resetURL)

	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, html string) error {
	from := fmt.Sprintf("%s <%s>", m.fromName, m.from)

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
