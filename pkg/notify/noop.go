package notify

import "context"

// Noop discards every notification. Used when no sink is configured.
type Noop struct{}

func (Noop) Notify(ctx context.Context, n Notification) error {
	return nil
}
