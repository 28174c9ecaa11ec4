// Package redisnotify implements ports.NotifierClient over redis pub/sub.
// Pub/sub messages have no subject field, so the notification is published
// as a small JSON envelope on the topic channel.
package redisnotify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ecomlabs/order-intake/internal/order/ports"
)

type envelope struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type Notifier struct {
	client *redis.Client
}

var _ ports.NotifierClient = (*Notifier)(nil)

func New(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Publish(ctx context.Context, note ports.Notification) error {
	b, err := json.Marshal(envelope{Subject: note.Subject, Message: note.Message})
	if err != nil {
		return fmt.Errorf("redisnotify: marshal notification: %w", err)
	}
	if err := n.client.Publish(ctx, note.Topic, b).Err(); err != nil {
		return fmt.Errorf("redisnotify: publish to %q: %w", note.Topic, err)
	}
	return nil
}
