package domain

import "time"

// OrderStatus is the lifecycle state of a persisted order.
// PENDING orders are promoted to COMPLETED by fulfillment (outside this
// service); only COMPLETED orders can be refunded.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusRefunded  OrderStatus = "REFUNDED"
)

// LineItem is a single priced position in a submission.
type LineItem struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// OrderRequest is the validated shape of an inbound submission. It only
// lives for the duration of one request and is never persisted.
type OrderRequest struct {
	OrderID string
	UserID  string
	Items   []LineItem
}

// OrderRecord is the persisted order entity, keyed by OrderID. The same
// content is written to the operational and history tables on every change.
type OrderRecord struct {
	OrderID      string      `json:"orderId"`
	UserID       string      `json:"userId"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt,omitzero"`
	RefundAmount float64     `json:"refundAmount,omitempty"`
}
