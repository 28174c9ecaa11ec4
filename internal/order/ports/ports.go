// Package ports declares the capability interfaces the order core depends
// on. Concrete clients (redis, fakes in tests) are injected at the boundary;
// the core stays polymorphic over exactly these operations.
package ports

import (
	"context"
	"errors"

	"github.com/ecomlabs/order-intake/internal/order/domain"
)

// ErrStatusConflict is returned by PutIf when the stored record's status no
// longer equals the expected prior status. It signals a lost compare-and-swap
// race, not a transport failure.
var ErrStatusConflict = errors.New("store: status conflict")

// StoreClient is the key-value store capability. Put and Get address records
// by table and order id. PutIf is a conditional write: it succeeds only while
// the currently stored record's status equals expect.
type StoreClient interface {
	Put(ctx context.Context, table string, rec domain.OrderRecord) error
	PutIf(ctx context.Context, table string, rec domain.OrderRecord, expect domain.OrderStatus) error
	// Get returns nil, nil when no record exists for the key.
	Get(ctx context.Context, table, key string) (*domain.OrderRecord, error)
}

// Notification is the ephemeral message handed to the notifier. Subject may
// be empty; it is only set for new-order notifications.
type Notification struct {
	Topic   string
	Subject string
	Message string
}

// NotifierClient is the publish-subscribe capability.
type NotifierClient interface {
	Publish(ctx context.Context, n Notification) error
}
