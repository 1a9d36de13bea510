package mail

import (
	"context"
	"log/slog"

	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
)

// LogSender writes messages to the log instead of delivering them.
// It is the default for local development.
type LogSender struct {
	logger *slog.Logger
}

var _ Sender = (*LogSender)(nil)

// NewLogSender creates a LogSender. If logger is nil, slog.Default() is used.
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{logger: log.With(slog.String("component", "mail"))}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	logger.FromContextOrDefault(ctx, s.logger).Info("email not delivered (log driver)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text))
	return nil
}
