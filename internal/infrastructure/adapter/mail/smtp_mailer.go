package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
)

// ErrNotConfigured is returned when the settings carry no SMTP host or sender
var ErrNotConfigured = errors.New("smtp is not configured")

// SMTPMailer implements external.Mailer using the SMTP settings of the request
type SMTPMailer struct {
	timeout      time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSMTPMailer creates a new SMTPMailer instance
func NewSMTPMailer(cfg config.MailConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) *SMTPMailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTPMailer{timeout: timeout, timeProvider: timeProvider, logger: logger}
}

// Send delivers a plain-text mail
func (m *SMTPMailer) Send(ctx context.Context, settings entity.SystemSettings, mail external.Mail) error {
	if settings.SMTPHost == "" || settings.SMTPFrom == "" {
		return ErrNotConfigured
	}
	if mail.To == "" {
		return errors.New("mail has no recipient")
	}

	port := settings.SMTPPort
	if port == 0 {
		port = 587
	}
	addr := net.JoinHostPort(settings.SMTPHost, strconv.Itoa(port))

	dialer := net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to smtp: %w", err)
	}

	deadline := m.timeProvider.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, settings.SMTPHost)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: settings.SMTPHost}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if settings.SMTPUser != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", settings.SMTPUser, settings.SMTPPassword, settings.SMTPHost)
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := client.Mail(settings.SMTPFrom); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(mail.To); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMessage(settings.SMTPFrom, mail, m.timeProvider.Now())); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	m.logger.Info("Mail sent", map[string]any{"to": mail.To, "subject": mail.Subject})
	return client.Quit()
}

func buildMessage(from string, mail external.Mail, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + mail.To + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(mail.Subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(mail.Message, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
