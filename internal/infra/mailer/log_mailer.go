package mailer

import (
	"context"
	"log/slog"

	"aunerarroz/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer returns a Mailer that writes the message to the log instead of sending it.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, mail *service.Mail) (string, error) {
	if mail == nil || mail.ToEmail == "" {
		return "", errors.New("mail recipient is required")
	}

	messageID := "log-" + uuid.New().String()
	m.logger.InfoContext(ctx, "[LogMailer] Email not sent, mailer disabled",
		slog.String("to", mail.ToEmail),
		slog.String("subject", mail.Subject),
		slog.String("text", mail.Text),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}
