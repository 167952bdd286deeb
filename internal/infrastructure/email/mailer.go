// Package email реализует порт ports.Mailer.
//
// Отправка писем - best-effort операция: use cases логируют сбой и
// продолжают работу, поэтому обе реализации безопасны для production.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/roadshare/roadshare/internal/application/ports"
)

// Compile-time checks
var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*NoopMailer)(nil)
)

// SMTPConfig - настройки SMTP-сервера.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Addr возвращает адрес сервера в формате host:port.
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPMailer отправляет письма через SMTP.
type SMTPMailer struct {
	config SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer создаёт SMTP-мейлер.
func NewSMTPMailer(config SMTPConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{config: config, logger: logger}
}

// SendWelcome отправляет приветственное письмо новому пользователю.
func (m *SMTPMailer) SendWelcome(ctx context.Context, to, fullName string) error {
	subject := "Welcome to RoadShare"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour account has been created. You can now book seats or publish travels.\r\n\r\nThe RoadShare team",
		fullName,
	)
	return m.send(ctx, to, subject, body)
}

// SendInscriptionConfirmation подтверждает бронирование места.
func (m *SMTPMailer) SendInscriptionConfirmation(ctx context.Context, to, fullName, travelID string) error {
	subject := "Your seat is booked"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour seat on travel %s is confirmed. The driver will see your booking.\r\n\r\nThe RoadShare team",
		fullName, travelID,
	)
	return m.send(ctx, to, subject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.config.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(m.config.Addr(), auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.DebugContext(ctx, "Email sent", "to", to, "subject", subject)
	return nil
}

// NoopMailer только логирует письма. Используется в dev-окружении
// и в тестах, когда SMTP не настроен.
type NoopMailer struct {
	logger *slog.Logger
}

// NewNoopMailer создаёт мейлер-заглушку.
func NewNoopMailer(logger *slog.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) SendWelcome(ctx context.Context, to, fullName string) error {
	m.logger.InfoContext(ctx, "Welcome email skipped (noop mailer)", "to", to, "full_name", fullName)
	return nil
}

func (m *NoopMailer) SendInscriptionConfirmation(ctx context.Context, to, fullName, travelID string) error {
	m.logger.InfoContext(ctx, "Inscription email skipped (noop mailer)", "to", to, "travel_id", travelID)
	return nil
}
