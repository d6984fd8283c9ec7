// Package notify delivers alert and crisis notifications to the
// configured channels. Email and slack are handed to downstream workers
// over redis pub/sub; webhook targets are called directly.
package notify

import "context"

//go:generate mockery --name Notifier
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
