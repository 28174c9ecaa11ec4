package httpx

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecomlabs/order-intake/internal/order/app"
)

// Handler translates HTTP requests into the order core's structured results.
type Handler struct {
	orders  *app.OrderHandler
	refunds *app.RefundProcessor
}

func NewHandler(orders *app.OrderHandler, refunds *app.RefundProcessor) *Handler {
	return &Handler{orders: orders, refunds: refunds}
}

// CreateOrder hands the raw body to the order handler. The body is passed
// through unparsed: decoding and validation belong to the core so every
// violated rule is reported in one response.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ServerErrorResponse{Error: "invalid request body"})
		return
	}

	res := h.orders.Handle(r.Context(), body)
	switch res.Status {
	case http.StatusOK:
		writeJSON(w, http.StatusOK, OrderAcceptedResponse{
			OK:       true,
			OrderID:  res.OrderID,
			Subtotal: res.Subtotal,
			Discount: res.Discount,
			Total:    res.Total,
		})
	case http.StatusBadRequest:
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: res.Errors})
	default:
		writeJSON(w, res.Status, ServerErrorResponse{Error: res.Err})
	}
}

// RefundOrder triggers the COMPLETED → REFUNDED transition for an order.
func (h *Handler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ServerErrorResponse{Error: "request body must be valid JSON"})
		return
	}

	res := h.refunds.Refund(r.Context(), orderID, req.UserID, req.Amount)
	if !res.Success {
		writeJSON(w, http.StatusUnprocessableEntity, RefundResponse{Success: false, Reason: res.Reason})
		return
	}
	writeJSON(w, http.StatusOK, RefundResponse{Success: true})
}

// GetOrder returns the current operational record for an order.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	rec, err := h.orders.Lookup(r.Context(), orderID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ServerErrorResponse{Error: "order lookup failed"})
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, ServerErrorResponse{Error: "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
