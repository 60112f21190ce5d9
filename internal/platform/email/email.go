// Package email implements the mail transport contract over SMTP. The
// noop mailer stands in when delivery is disabled, so callers never
// branch on configuration.
package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"sort"
	"strings"
	"time"

	"dezporcento/internal/domain/notify"
	"dezporcento/internal/platform/config"
)

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, from, to, subject, htmlBody string, attachments map[string][]byte) error {
	return nil
}

type smtpMailer struct {
	cfg config.Config
}

func New(cfg config.Config) notify.Mailer {
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return noopMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) Send(ctx context.Context, from, to, subject, htmlBody string, attachments map[string][]byte) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	msg := buildMessage(from, to, subject, htmlBody, attachments)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer client.Close()

	if s.cfg.SMTPUseTLS {
		tlsConfig := &tls.Config{ServerName: s.cfg.SMTPHost}
		if err := client.StartTLS(tlsConfig); err != nil {
			return err
		}
	}

	if s.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

const mixedBoundary = "dezporcento-report-boundary"

func buildMessage(from, to, subject, htmlBody string, attachments map[string][]byte) []byte {
	var buf bytes.Buffer

	write := func(format string, args ...any) {
		fmt.Fprintf(&buf, format+"\r\n", args...)
	}

	write("From: %s", from)
	write("To: %s", to)
	write("Subject: %s", mime.QEncoding.Encode("utf-8", subject))
	write("MIME-Version: 1.0")

	if len(attachments) == 0 {
		write("Content-Type: text/html; charset=\"UTF-8\"")
		write("")
		buf.WriteString(htmlBody)
		return buf.Bytes()
	}

	write("Content-Type: multipart/mixed; boundary=%q", mixedBoundary)
	write("")
	write("--%s", mixedBoundary)
	write("Content-Type: text/html; charset=\"UTF-8\"")
	write("")
	buf.WriteString(htmlBody)
	write("")

	// Stable attachment order keeps messages reproducible.
	names := make([]string, 0, len(attachments))
	for name := range attachments {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		write("--%s", mixedBoundary)
		write("Content-Type: application/octet-stream")
		write("Content-Transfer-Encoding: base64")
		write("Content-Disposition: attachment; filename=%q", name)
		write("")
		writeBase64(&buf, attachments[name])
	}
	write("--%s--", mixedBoundary)

	return buf.Bytes()
}

func writeBase64(buf *bytes.Buffer, content []byte) {
	encoded := base64.StdEncoding.EncodeToString(content)
	const lineLength = 76
	for len(encoded) > 0 {
		n := lineLength
		if n > len(encoded) {
			n = len(encoded)
		}
		buf.WriteString(encoded[:n])
		buf.WriteString("\r\n")
		encoded = encoded[n:]
	}
}
