package notify

import (
	"context"

	"monitoring-srv/pkg/log"
)

const channelWebhook = "webhook"

// Fanout routes a notification's channels to their senders: "webhook"
// goes to the direct sender, everything else to the redis publisher.
// Either sender may be nil, in which case its channels are skipped.
type Fanout struct {
	l       log.Logger
	pub     *RedisPublisher
	webhook *WebhookSender
}

// NewFanout creates the channel router.
func NewFanout(l log.Logger, pub *RedisPublisher, webhook *WebhookSender) *Fanout {
	return &Fanout{
		l:       l,
		pub:     pub,
		webhook: webhook,
	}
}

// Notify delivers to every channel. A failing sender does not stop the
// others; the first error is returned.
func (f *Fanout) Notify(ctx context.Context, n Notification) error {
	var queued, direct []string
	for _, ch := range n.Channels {
		if ch == channelWebhook {
			direct = append(direct, ch)
		} else {
			queued = append(queued, ch)
		}
	}

	var firstErr error
	if len(queued) > 0 && f.pub != nil {
		qn := n
		qn.Channels = queued
		if err := f.pub.Notify(ctx, qn); err != nil {
			firstErr = err
		}
	}
	if len(direct) > 0 && f.webhook != nil {
		dn := n
		dn.Channels = direct
		if err := f.webhook.Notify(ctx, dn); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
