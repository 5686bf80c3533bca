// Package mailer delivers transactional email: MailerSend when an API key is
// configured, the process log otherwise.
package mailer

import (
	"log/slog"

	"aunerarroz/config"
	"aunerarroz/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the Mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New picks the mailer implementation from the mailer config section.
func New(params Params) service.Mailer {
	cfg := params.Config.Mailer
	if cfg == nil || cfg.APIKey == "" || cfg.FromEmail == "" {
		params.Logger.Warn("Mailer not configured, emails will only be logged")

		return NewLogMailer(params.Logger)
	}

	return NewMailerSend(cfg.APIKey, cfg.FromName, cfg.FromEmail, params.Logger)
}
