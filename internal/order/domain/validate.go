package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValidateRequest parses a raw submission and checks it against the order
// schema. All rule violations are collected and returned together so the
// caller can report every problem in one response; only a body that is not
// valid JSON short-circuits with a single decode error.
//
// Zero and negative prices or quantities are accepted: the contract is
// type + finiteness only, never truthiness.
func ValidateRequest(raw []byte) (*OrderRequest, []string) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, []string{"request body must be valid JSON"}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, []string{"request body must be a JSON object"}
	}

	var errs []string
	req := &OrderRequest{}

	if s, ok := obj["orderId"].(string); ok && s != "" {
		req.OrderID = s
	} else {
		errs = append(errs, "orderId must be a non-empty string")
	}

	if s, ok := obj["userId"].(string); ok && s != "" {
		req.UserID = s
	} else {
		errs = append(errs, "userId must be a non-empty string")
	}

	items, itemErrs := validateItems(obj["items"])
	errs = append(errs, itemErrs...)
	req.Items = items

	if len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

func validateItems(raw any) ([]LineItem, []string) {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil, []string{"items must be a non-empty array"}
	}

	var errs []string
	items := make([]LineItem, 0, len(list))
	for i, el := range list {
		fields, ok := el.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("items[%d] must be an object", i))
			continue
		}

		price, priceOK := numericField(fields, "price")
		if !priceOK {
			errs = append(errs, fmt.Sprintf("items[%d].price must be a finite number", i))
		}
		quantity, quantityOK := numericField(fields, "quantity")
		if !quantityOK {
			errs = append(errs, fmt.Sprintf("items[%d].quantity must be a finite number", i))
		}

		if priceOK && quantityOK {
			items = append(items, LineItem{Price: price, Quantity: quantity})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return items, nil
}

// numericField reports whether the named field is present and a finite JSON
// number. encoding/json decodes every JSON number into float64.
func numericField(fields map[string]any, name string) (float64, bool) {
	v, ok := fields[name].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
