package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomlabs/order-intake/internal/order/ports"
)

type fakeNotifier struct {
	published []ports.Notification
	err       error
}

func (f *fakeNotifier) Publish(_ context.Context, n ports.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, n)
	return nil
}

func TestNotifyNewOrder(t *testing.T) {
	client := &fakeNotifier{}
	p := New(client, "order-events")

	err := p.NotifyNewOrder(context.Background(), "ord-1", 1080)

	require.NoError(t, err)
	require.Len(t, client.published, 1)
	n := client.published[0]
	assert.Equal(t, "order-events", n.Topic)
	assert.Equal(t, "New Order", n.Subject)
	assert.Contains(t, n.Message, "ord-1")
	assert.Contains(t, n.Message, "1080")
}

func TestNotifyRefund_HasNoSubject(t *testing.T) {
	client := &fakeNotifier{}
	p := New(client, "order-events")

	err := p.NotifyRefund(context.Background(), "ord-1", 50)

	require.NoError(t, err)
	require.Len(t, client.published, 1)
	n := client.published[0]
	assert.Equal(t, "order-events", n.Topic)
	assert.Empty(t, n.Subject)
	assert.Contains(t, n.Message, "ord-1")
	assert.Contains(t, n.Message, "50")
}
