package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomlabs/order-intake/internal/order/domain"
	"github.com/ecomlabs/order-intake/internal/order/eventlog"
	"github.com/ecomlabs/order-intake/internal/order/ports"
)

// RefundResult is the structured outcome of a refund attempt. Reason is set
// on failure and distinguishes precondition failures from dependency
// failures for observability.
type RefundResult struct {
	Success bool
	Reason  string
}

// RefundProcessor performs the COMPLETED → REFUNDED transition. The userId
// argument is accepted but not cross-checked against the record's owning
// user; callers must not rely on it as an authorization check.
type RefundProcessor struct {
	repo     OrderStore
	notifier Notifier
	events   eventlog.Repository // nil-safe
	now      func() time.Time
}

func NewRefundProcessor(repo OrderStore, notifier Notifier, events eventlog.Repository) *RefundProcessor {
	return &RefundProcessor{
		repo:     repo,
		notifier: notifier,
		events:   events,
		now:      time.Now,
	}
}

// Refund checks preconditions in order, short-circuiting on the first
// failure with no side effects, then persists the transition with a
// conditional write and notifies. Persistence failure suppresses the
// notification.
func (p *RefundProcessor) Refund(ctx context.Context, orderID, userID string, amount float64) RefundResult {
	if orderID == "" || userID == "" || amount <= 0 {
		return RefundResult{Reason: "orderId, userId and a positive amount are required"}
	}

	existing, err := p.repo.GetOrder(ctx, orderID)
	if err != nil {
		slog.ErrorContext(ctx, "refund lookup failed", "order_id", orderID, "error", err)
		return RefundResult{Reason: "order lookup failed"}
	}
	if existing == nil {
		return RefundResult{Reason: "order not found"}
	}
	if existing.Status != domain.StatusCompleted {
		return RefundResult{Reason: fmt.Sprintf("order is %s, refunds require %s", existing.Status, domain.StatusCompleted)}
	}

	updated := *existing
	updated.Status = domain.StatusRefunded
	updated.RefundAmount = amount
	updated.UpdatedAt = p.now().UTC()

	// The swap succeeds only while the stored status is still COMPLETED, so
	// two concurrent refunds of one order cannot both commit.
	if err := p.repo.TransitionOrder(ctx, updated, domain.StatusCompleted); err != nil {
		if errors.Is(err, ports.ErrStatusConflict) {
			return RefundResult{Reason: "order status changed concurrently"}
		}
		slog.ErrorContext(ctx, "refund persistence failed", "order_id", orderID, "error", err)
		return RefundResult{Reason: "refund persistence failed"}
	}

	p.logEvent(ctx, eventlog.NewEntry(ctx, orderID, eventlog.OrderRefunded, updated.Status, fmt.Sprintf("amount=%v", amount)))

	if err := p.notifier.NotifyRefund(ctx, orderID, amount); err != nil {
		slog.ErrorContext(ctx, "refund notification failed", "order_id", orderID, "error", err)
		return RefundResult{Reason: "refund recorded but notification failed"}
	}

	slog.InfoContext(ctx, "refund processed", "order_id", orderID, "amount", amount)
	return RefundResult{Success: true}
}

func (p *RefundProcessor) logEvent(ctx context.Context, entry *eventlog.Entry) {
	if p.events == nil {
		return
	}
	if err := p.events.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "event log append failed", "order_id", entry.OrderID, "kind", entry.Kind, "error", err)
	}
}
