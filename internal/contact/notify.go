// internal/contact/notify.go
//
// Outbound notification stub.
//
// Context
// -------
// After a submission is stored, the site notifies the team inbox.  Until
// a real mail queue lands, this stub logs the payload and returns nil so
// the request path never blocks on delivery.  Swap the body with a queue
// publisher (SES, Postmark, …) when ready.
package contact

import (
	"context"

	"go.uber.org/zap"
)

// Notification is the outbound email job for one stored submission.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// EnqueueNotification logs the notification payload.
func EnqueueNotification(ctx context.Context, n Notification) error {
	zap.S().Infow("queue notification",
		"to", n.To,
		"subject", n.Subject,
		"body_len", len(n.Body),
	)
	return nil
}
