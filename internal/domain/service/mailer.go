package service

import "context"

// Mail is a transactional email.
type Mail struct {
	ToEmail string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers transactional email.
type Mailer interface {
	// Send delivers mail and returns the provider message id when there is one.
	Send(ctx context.Context, mail *Mail) (string, error)
}
