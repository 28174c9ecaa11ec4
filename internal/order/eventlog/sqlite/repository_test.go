package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomlabs/order-intake/internal/order/domain"
	"github.com/ecomlabs/order-intake/internal/order/eventlog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndListByOrder(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	created := &eventlog.Entry{
		ID:        "evt-1",
		OrderID:   "ord-1",
		Kind:      eventlog.OrderCreated,
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	refunded := &eventlog.Entry{
		ID:        "evt-2",
		OrderID:   "ord-1",
		Kind:      eventlog.OrderRefunded,
		Status:    domain.StatusRefunded,
		Detail:    "amount=50",
		TraceID:   "4bf92f3577b34da6a3ce929d0e0e4736",
		SpanID:    "00f067aa0ba902b7",
		CreatedAt: time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
	}
	other := &eventlog.Entry{
		ID:        "evt-3",
		OrderID:   "ord-2",
		Kind:      eventlog.OrderCreated,
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(ctx, created))
	require.NoError(t, repo.Save(ctx, refunded))
	require.NoError(t, repo.Save(ctx, other))

	entries, err := repo.ListByOrder(ctx, "ord-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, *created, entries[0])
	assert.Equal(t, *refunded, entries[1])
}

func TestListByOrder_UnknownOrderIsEmpty(t *testing.T) {
	repo := openTestRepo(t)

	entries, err := repo.ListByOrder(context.Background(), "nope")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_DuplicateIDFails(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	entry := &eventlog.Entry{
		ID:        "evt-1",
		OrderID:   "ord-1",
		Kind:      eventlog.OrderCreated,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.Save(ctx, entry))
	assert.Error(t, repo.Save(ctx, entry))
}
