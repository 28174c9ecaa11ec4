package eventlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/ecomlabs/order-intake/internal/order/domain"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	TraceID string
	SpanID  string
}

// ExtractTraceInfo reads the active OpenTelemetry span from ctx and returns
// its trace_id and span_id as hex strings. Both fields are empty when the
// context carries no active span (e.g. in unit tests).
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}

// NewEntry builds an Entry with a fresh id and the trace info extracted
// from ctx.
func NewEntry(ctx context.Context, orderID string, kind Kind, status domain.OrderStatus, detail string) *Entry {
	ti := ExtractTraceInfo(ctx)
	return &Entry{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Kind:      kind,
		Status:    status,
		Detail:    detail,
		TraceID:   ti.TraceID,
		SpanID:    ti.SpanID,
		CreatedAt: time.Now().UTC(),
	}
}
