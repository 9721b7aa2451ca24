package notifications

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/nakochan/the-kokoa-engine/domain"
	"github.com/nakochan/the-kokoa-engine/internal/config"
)

const dialTimeout = 30 * time.Second

// SMTPMailer implements domain.Mailer over SMTP with STARTTLS (587)
// or implicit TLS (465).
type SMTPMailer struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewSMTPMailer creates a new SMTP mailer with the embedded templates
func NewSMTPMailer(cfg config.SMTPConfig) (domain.Mailer, error) {
	tmpl, err := template.New("emails").Parse(emailTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &SMTPMailer{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

// SendVerificationCode implements domain.Mailer
func (m *SMTPMailer) SendVerificationCode(to, code string) error {
	body, err := m.renderTemplate("verification", VerificationData{
		Code:    code,
		AppName: m.cfg.FromName,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return m.Send(to, "이메일 인증코드입니다.", body)
}

// Send implements domain.Mailer
func (m *SMTPMailer) Send(to, subject, body string) error {
	// If no SMTP host is configured, log instead of sending. Keeps local
	// development working without a mail account.
	if m.cfg.Host == "" {
		fmt.Printf("[MOCK MAIL] To: %s, Subject: %s\n", to, subject)
		return nil
	}

	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	headers := map[string]string{
		"From":         from,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if m.cfg.UseSSL {
		return m.sendWithSSL(to, msg.String())
	}
	return m.sendWithTLS(to, msg.String())
}

// sendWithTLS delivers via STARTTLS, the common path for port 587
func (m *SMTPMailer) sendWithTLS(to, message string) error {
	dialer := &net.Dialer{Timeout: dialTimeout}
	netConn, err := dialer.Dial("tcp", m.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server %s: %w", m.cfg.Addr(), err)
	}
	netConn.SetDeadline(time.Now().Add(dialTimeout))

	conn, err := smtp.NewClient(netConn, m.cfg.Host)
	if err != nil {
		netConn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer conn.Close()

	if err := conn.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	return m.deliver(conn, to, message)
}

// sendWithSSL delivers over an implicit TLS connection (port 465)
func (m *SMTPMailer) sendWithSSL(to, message string) error {
	dialer := &net.Dialer{Timeout: dialTimeout}
	netConn, err := tls.DialWithDialer(dialer, "tcp", m.cfg.Addr(), &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server (SSL) %s: %w", m.cfg.Addr(), err)
	}

	conn, err := smtp.NewClient(netConn, m.cfg.Host)
	if err != nil {
		netConn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer conn.Close()

	return m.deliver(conn, to, message)
}

func (m *SMTPMailer) deliver(conn *smtp.Client, to, message string) error {
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := conn.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := conn.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return conn.Quit()
}

func (m *SMTPMailer) renderTemplate(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
