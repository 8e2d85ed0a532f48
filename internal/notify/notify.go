// Package notify carries password-recovery requests out of the process.
// The core never talks to this package; only the HTTP surface and the
// relay worker do. Actual mail delivery stays outside this repo.
package notify

import (
	"context"
	"log/slog"
)

// Notifier accepts a destination address and a message payload and reports
// success or failure. Implementations are external collaborators; the
// in-repo ones either enqueue (Publisher) or just log (LogNotifier).
type Notifier interface {
	Notify(ctx context.Context, address, subject, body string) error
}

// LogNotifier is the fallback used when no real mailer is wired up. It
// records the request and succeeds, which keeps local setups working.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, address, subject, _ string) error {
	slog.InfoContext(ctx, "Recovery notification (log only)",
		"address", address, "subject", subject)
	return nil
}
