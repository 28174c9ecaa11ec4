// Package notify wraps the notifier client with the fixed human-readable
// message templates for order events.
package notify

import (
	"context"
	"fmt"

	"github.com/ecomlabs/order-intake/internal/order/ports"
)

const newOrderSubject = "New Order"

type Publisher struct {
	notifier ports.NotifierClient
	topic    string
}

func New(notifier ports.NotifierClient, topic string) *Publisher {
	return &Publisher{notifier: notifier, topic: topic}
}

// NotifyNewOrder publishes the new-order message. This is the only
// notification that carries a subject.
func (p *Publisher) NotifyNewOrder(ctx context.Context, orderID string, total float64) error {
	return p.notifier.Publish(ctx, ports.Notification{
		Topic:   p.topic,
		Subject: newOrderSubject,
		Message: fmt.Sprintf("Order received: %s total: %v", orderID, total),
	})
}

// NotifyRefund publishes the refund message, subject-less.
func (p *Publisher) NotifyRefund(ctx context.Context, orderID string, amount float64) error {
	return p.notifier.Publish(ctx, ports.Notification{
		Topic:   p.topic,
		Message: fmt.Sprintf("Refund processed: %s amount: %v", orderID, amount),
	})
}
