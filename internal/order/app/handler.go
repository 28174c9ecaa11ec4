// Package app holds the request-handling orchestration for the order
// domain: intake of new orders and the refund state transition.
package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecomlabs/order-intake/internal/order/domain"
	"github.com/ecomlabs/order-intake/internal/order/eventlog"
)

// OrderStore is what the handlers need from the repository.
type OrderStore interface {
	SaveOrder(ctx context.Context, rec domain.OrderRecord) error
	GetOrder(ctx context.Context, orderID string) (*domain.OrderRecord, error)
	TransitionOrder(ctx context.Context, rec domain.OrderRecord, expect domain.OrderStatus) error
}

// Notifier is what the handlers need from the notification publisher.
type Notifier interface {
	NotifyNewOrder(ctx context.Context, orderID string, total float64) error
	NotifyRefund(ctx context.Context, orderID string, amount float64) error
}

// Result is the structured outcome of handling a submission. Status uses
// HTTP semantics: 200 carries the pricing, 400 carries the validation
// errors, 500 carries a dependency failure message.
type Result struct {
	Status   int
	OrderID  string
	Subtotal float64
	Discount float64
	Total    float64
	Errors   []string
	Err      string
}

// OrderHandler orchestrates validation, pricing, dual-write persistence and
// notification for new orders. It holds no mutable state across requests.
type OrderHandler struct {
	repo     OrderStore
	notifier Notifier
	events   eventlog.Repository // nil-safe: event logging skipped if nil
	now      func() time.Time
}

func NewOrderHandler(repo OrderStore, notifier Notifier, events eventlog.Repository) *OrderHandler {
	return &OrderHandler{
		repo:     repo,
		notifier: notifier,
		events:   events,
		now:      time.Now,
	}
}

// Handle processes one raw submission. Persistence is awaited to completion
// before the notification is attempted; a notification failure is reported
// even though the already-committed order stands. Replaying the same body
// creates a fresh PENDING record with the same total — no deduplication.
func (h *OrderHandler) Handle(ctx context.Context, rawBody []byte) Result {
	req, verrs := domain.ValidateRequest(rawBody)
	if verrs != nil {
		return Result{Status: http.StatusBadRequest, Errors: verrs}
	}

	quote := domain.Price(req.Items)

	rec := domain.OrderRecord{
		OrderID:   req.OrderID,
		UserID:    req.UserID,
		Total:     quote.Total,
		Status:    domain.StatusPending,
		CreatedAt: h.now().UTC(),
	}

	if err := h.repo.SaveOrder(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "order persistence failed", "order_id", rec.OrderID, "error", err)
		return Result{Status: http.StatusInternalServerError, Err: "failed to persist order"}
	}

	h.logEvent(ctx, eventlog.NewEntry(ctx, rec.OrderID, eventlog.OrderCreated, rec.Status, ""))

	if err := h.notifier.NotifyNewOrder(ctx, rec.OrderID, rec.Total); err != nil {
		slog.ErrorContext(ctx, "new-order notification failed", "order_id", rec.OrderID, "error", err)
		return Result{Status: http.StatusInternalServerError, Err: "order stored but notification failed"}
	}

	slog.InfoContext(ctx, "order accepted", "order_id", rec.OrderID, "user_id", rec.UserID, "total", rec.Total)

	return Result{
		Status:   http.StatusOK,
		OrderID:  rec.OrderID,
		Subtotal: quote.Subtotal,
		Discount: quote.Discount,
		Total:    quote.Total,
	}
}

// Lookup returns the current operational record, or nil when the order does
// not exist.
func (h *OrderHandler) Lookup(ctx context.Context, orderID string) (*domain.OrderRecord, error) {
	return h.repo.GetOrder(ctx, orderID)
}

// logEvent appends to the audit log best-effort: a log failure never fails
// the request.
func (h *OrderHandler) logEvent(ctx context.Context, entry *eventlog.Entry) {
	if h.events == nil {
		return
	}
	if err := h.events.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "event log append failed", "order_id", entry.OrderID, "kind", entry.Kind, "error", err)
	}
}
