// Package smtpmail is a thin client for submitting HTML mail through an
// authenticated SMTP relay.
package smtpmail

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Config holds SMTP relay connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // sender address; defaults to Username when empty
}

// Client sends messages through a configured SMTP relay. Each Send opens a
// fresh connection; the relay session is not reused.
type Client struct {
	cfg  Config
	addr string
	auth smtp.Auth
}

// NewClient creates a new SMTP client. smtp.SendMail negotiates STARTTLS
// with the relay before authenticating.
func NewClient(cfg Config) *Client {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Client{
		cfg:  cfg,
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}
}

// Send transmits a single HTML message to one recipient. It returns an
// error on connection, authentication or transmission failure.
func (c *Client) Send(to, subject, htmlBody string) error {
	msg := buildMessage(c.cfg.From, to, subject, htmlBody)
	if err := smtp.SendMail(c.addr, c.auth, c.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s via %s: %w", to, c.addr, err)
	}
	return nil
}

// buildMessage assembles the MIME envelope for an HTML body. The subject is
// Q-encoded so non-ASCII text survives the header.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
