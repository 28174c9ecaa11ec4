// Package eventlog defines the order event log: a durable, append-only
// audit trail of order lifecycle transitions.
//
// Each entry captures what happened to an order and when, together with the
// trace_id of the request that caused it, so a row in the log can be joined
// with business data and correlated with the distributed trace.
package eventlog

import (
	"time"

	"github.com/ecomlabs/order-intake/internal/order/domain"
)

// Kind names the lifecycle transition an entry records.
type Kind string

const (
	OrderCreated  Kind = "ORDER_CREATED"
	OrderRefunded Kind = "ORDER_REFUNDED"
)

// Entry is a single row in the order_events table.
type Entry struct {
	// ID is a unique identifier for this entry.
	ID string

	// OrderID is the business identifier of the affected order.
	OrderID string

	// Kind is the transition that was applied.
	Kind Kind

	// Status is the order status after the transition.
	Status domain.OrderStatus

	// Detail is free-form context, e.g. the refunded amount.
	Detail string

	// TraceID is the W3C trace ID from the OpenTelemetry span that was
	// active when the entry was written. Empty when no span is active.
	TraceID string

	// SpanID pinpoints the span within the trace.
	SpanID string

	// CreatedAt is the wall-clock time of the entry.
	CreatedAt time.Time
}
