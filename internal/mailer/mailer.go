// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mailer delivers the review text over SMTP.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/ZeyadKm/airlit/pkg/types"
)

// Settings holds resolved SMTP delivery parameters.
type Settings struct {
	Host       string
	Port       int
	Sender     string
	Recipients []string
	Username   string
	Password   string
	UseTLS     bool
}

// SettingsFromConfig resolves delivery settings from configuration.
// A missing host or recipient list means delivery is not configured and
// (nil, nil) is returned so the caller can skip sending. A configured but
// incomplete setup (no resolvable sender, empty recipient list) is an
// error.
func SettingsFromConfig(cfg types.EmailConfig) (*Settings, error) {
	if cfg.Host == "" || cfg.To == "" {
		return nil, nil
	}

	port := cfg.Port
	if port <= 0 {
		port = 587
	}

	sender := cfg.From
	if sender == "" {
		sender = cfg.Username
	}
	if sender == "" {
		return nil, fmt.Errorf("email sender must be provided via email.from or email.username")
	}

	var recipients []string
	for _, addr := range strings.Split(cfg.To, ",") {
		if a := strings.TrimSpace(addr); a != "" {
			recipients = append(recipients, a)
		}
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("at least one email recipient must be specified in email.to")
	}

	return &Settings{
		Host:       cfg.Host,
		Port:       port,
		Sender:     sender,
		Recipients: recipients,
		Username:   cfg.Username,
		Password:   cfg.Password,
		UseTLS:     cfg.UseTLS,
	}, nil
}

// Send delivers a plain-text message to all recipients. STARTTLS is
// negotiated when UseTLS is set; authentication happens only when both
// username and password are present.
func Send(s *Settings, subject, body string) error {
	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer client.Close()

	if s.UseTLS {
		if err := client.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return fmt.Errorf("starting TLS: %w", err)
		}
	}

	if s.Username != "" && s.Password != "" {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err := client.Mail(s.Sender); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	for _, rcpt := range s.Recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("adding recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening message body: %w", err)
	}
	if _, err := w.Write(buildMessage(s, subject, body)); err != nil {
		w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}

	return client.Quit()
}

// buildMessage renders the RFC 5322 message: headers, blank line, body.
func buildMessage(s *Settings, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "From: %s\r\n", s.Sender)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(s.Recipients, ", "))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
