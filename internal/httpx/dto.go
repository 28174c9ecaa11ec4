package httpx

// OrderAcceptedResponse is the 200 payload for a new order. It reports the
// discount actually applied alongside the total so callers can check the
// persisted and reported values agree.
type OrderAcceptedResponse struct {
	OK       bool    `json:"ok"`
	OrderID  string  `json:"orderId"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// ValidationErrorResponse is the 400 payload: every violated rule, in order.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ServerErrorResponse is the payload for dependency failures.
type ServerErrorResponse struct {
	Error string `json:"error"`
}

type RefundRequest struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

type RefundResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}
