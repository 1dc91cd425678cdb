package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"supplier-api/config"
	"supplier-api/idgen"

	"gopkg.in/gomail.v2"
)

// ErrNoRecipients is returned when a message has an empty To list.
var ErrNoRecipients = errors.New("message has no recipients")

// Message is an HTML e-mail.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends mail through one SMTP account using gomail.
type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPSender builds a sender from the mail settings. Port 465 uses
// implicit TLS, any other port upgrades with STARTTLS when offered.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.SkipVerify {
		dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: cfg.Host}
	}
	return &SMTPSender{
		dialer:   dialer,
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// Compose turns msg into a gomail message with a unique Message-ID.
func (s *SMTPSender) Compose(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%d@%s>", idgen.GenerateID(), domainOf(s.from)))
	m.SetBody("text/html", msg.HTML)
	return m
}

// Send dials the SMTP server and delivers msg. There is no retry.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := s.Compose(msg)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", strings.Join(msg.To, ","), err)
	}

	slog.Info("email sent", "to", msg.To, "subject", msg.Subject, "message_id", m.GetHeader("Message-ID"))
	return nil
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}
