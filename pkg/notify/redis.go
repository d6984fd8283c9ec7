package notify

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"monitoring-srv/pkg/log"
)

// RedisPublisher publishes notifications onto per-channel pub/sub topics
// (for example "notifications:email:<trackerID>") consumed by the
// delivery workers.
type RedisPublisher struct {
	l      log.Logger
	client *goredis.Client
	prefix string
}

// NewRedisPublisher wraps an existing redis client. The prefix defaults
// to "notifications" when empty.
func NewRedisPublisher(l log.Logger, client *goredis.Client, prefix string) *RedisPublisher {
	if prefix == "" {
		prefix = "notifications"
	}
	return &RedisPublisher{
		l:      l,
		client: client,
		prefix: prefix,
	}
}

// Notify publishes the notification once per channel.
func (p *RedisPublisher) Notify(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	for _, ch := range n.Channels {
		topic := fmt.Sprintf("%s:%s:%s", p.prefix, ch, n.TrackerID)
		if err := p.client.Publish(ctx, topic, data).Err(); err != nil {
			p.l.Errorf(ctx, "pkg.notify.RedisPublisher.Notify: publish %s: %v", topic, err)
			return err
		}
	}
	return nil
}
