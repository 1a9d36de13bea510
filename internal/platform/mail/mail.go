// Package mail delivers transactional email such as address verification links.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Anastasia-front/contacts-api/internal/config"
)

// Message is a single plain-text/HTML email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the Sender selected by cfg.Driver.
func New(cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "log":
		return NewLogSender(logger), nil
	case "smtp":
		s, err := NewSMTPSender(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown mail driver: %q", cfg.Driver)
	}
}

// VerificationLink returns the URL that confirms ownership of an address.
func VerificationLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/api/users/verify/" + url.PathEscape(token)
}

// VerificationMessage builds the email asking to to confirm their address.
func VerificationMessage(baseURL, to, token string) Message {
	link := VerificationLink(baseURL, token)
	return Message{
		To:      to,
		Subject: "Verify your email",
		Text:    "Confirm your email address by opening this link: " + link,
		HTML:    fmt.Sprintf(`<a target="_blank" href="%s">Click to verify your email</a>`, link),
	}
}
