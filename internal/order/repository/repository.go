// Package repository implements the dual-write persistence contract: every
// order mutation is written to both the operational table and the history
// table. The two destinations are expected to converge but are not
// transactionally linked — a partial failure is reported as a failure and
// the surviving write is left in place.
package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ecomlabs/order-intake/internal/order/domain"
	"github.com/ecomlabs/order-intake/internal/order/ports"
)

type OrderRepository struct {
	store        ports.StoreClient
	ordersTable  string
	historyTable string
}

func New(store ports.StoreClient, ordersTable, historyTable string) *OrderRepository {
	return &OrderRepository{
		store:        store,
		ordersTable:  ordersTable,
		historyTable: historyTable,
	}
}

// SaveOrder writes the identical record to both destinations concurrently
// and succeeds only if both writes succeed. The writes are keyed by order id
// and idempotent by content, so re-applying the same record is safe.
func (r *OrderRepository) SaveOrder(ctx context.Context, rec domain.OrderRecord) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := r.store.Put(ctx, r.ordersTable, rec); err != nil {
			return fmt.Errorf("put order %s to %s: %w", rec.OrderID, r.ordersTable, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.store.Put(ctx, r.historyTable, rec); err != nil {
			return fmt.Errorf("put order %s to %s: %w", rec.OrderID, r.historyTable, err)
		}
		return nil
	})

	return g.Wait()
}

// GetOrder reads the operational table only; the history table is
// write-only from the core's perspective. Returns nil, nil when the order
// does not exist.
func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.OrderRecord, error) {
	rec, err := r.store.Get(ctx, r.ordersTable, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s from %s: %w", orderID, r.ordersTable, err)
	}
	return rec, nil
}

// TransitionOrder persists a status transition with a conditional write:
// the operational record is replaced only while its stored status still
// equals expect, so two concurrent transitions of the same order cannot
// both commit. The history write follows the successful swap — a lost race
// leaves no stray history row.
func (r *OrderRepository) TransitionOrder(ctx context.Context, rec domain.OrderRecord, expect domain.OrderStatus) error {
	if err := r.store.PutIf(ctx, r.ordersTable, rec, expect); err != nil {
		return fmt.Errorf("transition order %s in %s: %w", rec.OrderID, r.ordersTable, err)
	}
	if err := r.store.Put(ctx, r.historyTable, rec); err != nil {
		return fmt.Errorf("put order %s to %s: %w", rec.OrderID, r.historyTable, err)
	}
	return nil
}
