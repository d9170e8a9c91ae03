// Package mail delivers registration emails to newly added organizations.
package mail

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
	"text/template"

	"new-arrivals-chi/internal/config"
	"new-arrivals-chi/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mail_mocks.go -package=mocks

// Mailer sends a plain text email
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through an SMTP relay
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a mailer for the configured relay
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		send:     smtp.SendMail,
	}
}

// Send delivers a message to a single recipient
func (m *SMTPMailer) Send(to, subject, body string) error {
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	msg := buildMessage(m.from, to, subject, body)
	if err := m.send(m.host+":"+m.port, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// LogMailer records outgoing mail in the log instead of sending it. The body
// is never logged because it carries a temporary password.
type LogMailer struct{}

// Send logs the recipient and subject
func (LogMailer) Send(to, subject, body string) error {
	logger.New().WithFields(map[string]interface{}{
		"to":      to,
		"subject": subject,
	}).Warn("SMTP not configured, email not delivered")
	return nil
}

// NewFromConfig returns an SMTPMailer when SMTP_HOST is set and a LogMailer otherwise
func NewFromConfig(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, from)
}

const registrationSubject = "Welcome to New Arrivals Chicago"

var registrationBody = template.Must(template.New("registration").Parse(`Hello,

An account has been created for {{.Organization}} on New Arrivals Chicago.

Email: {{.Email}}
Registration password: {{.Password}}

Set your own password at {{.Link}} before signing in.
`))

// RegistrationEmail renders the message sent to a new organization manager
func RegistrationEmail(publicURL, organization, email, temporaryPassword string) (string, string, error) {
	var buf bytes.Buffer
	err := registrationBody.Execute(&buf, map[string]string{
		"Organization": organization,
		"Email":        email,
		"Password":     temporaryPassword,
		"Link":         strings.TrimRight(publicURL, "/") + "/registration_change_password",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render registration email: %w", err)
	}
	return registrationSubject, buf.String(), nil
}
