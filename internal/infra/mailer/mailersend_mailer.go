package mailer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aunerarroz/internal/domain/service"

	"github.com/mailersend/mailersend-go"
	"github.com/pkg/errors"
)

const sendTimeout = 10 * time.Second

type mailerSend struct {
	client *mailersend.Mailersend
	from   mailersend.From
	logger *slog.Logger
}

// NewMailerSend returns a Mailer backed by the MailerSend API.
func NewMailerSend(apiKey, fromName, fromEmail string, logger *slog.Logger) service.Mailer {
	return &mailerSend{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
		logger: logger,
	}
}

// Send returns the provider message ID when MailerSend reports one.
func (m *mailerSend) Send(ctx context.Context, mail *service.Mail) (string, error) {
	if mail == nil || mail.ToEmail == "" {
		return "", errors.New("mail recipient is required")
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: mail.ToName, Email: mail.ToEmail}})
	msg.SetSubject(mail.Subject)
	if strings.TrimSpace(mail.Text) != "" {
		msg.SetText(mail.Text)
	}
	if strings.TrimSpace(mail.HTML) != "" {
		msg.SetHTML(mail.HTML)
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return "", errors.Wrap(err, "mailersend send failed")
	}

	var messageID string
	if res != nil {
		messageID = res.Header.Get("X-Message-Id")
	}

	m.logger.InfoContext(ctx, "Email sent",
		slog.String("subject", mail.Subject),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}
