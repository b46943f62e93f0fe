package core

import "context"

// Mailer sends an email with plain-text and HTML body variants.
// Failures propagate as errors to the caller.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}
