package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/Anastasia-front/contacts-api/internal/config"
	gomail "github.com/wneessen/go-mail"
)

// smtpTimeout bounds each dial and SMTP command.
const smtpTimeout = 10 * time.Second

// deliverer is the part of the go-mail client SMTPSender uses.
type deliverer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPSender delivers messages through an SMTP relay using go-mail.
type SMTPSender struct {
	host   string
	from   string
	client deliverer
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTPSender. STARTTLS is used when the relay
// offers it, and PLAIN auth when a username is configured.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(smtpTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPSender{host: cfg.SMTPHost, from: cfg.From, client: client}, nil
}

// Send implements Sender. The dial and the SMTP exchange both stop when ctx is done.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.compose(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", s.host, err)
	}
	return nil
}

func (s *SMTPSender) compose(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}

	return m, nil
}
