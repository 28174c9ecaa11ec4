package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest_Valid(t *testing.T) {
	req, errs := ValidateRequest([]byte(`{
		"orderId": "ord-1",
		"userId": "usr-1",
		"items": [{"price": 600, "quantity": 2}, {"price": 0, "quantity": 1}]
	}`))

	require.Nil(t, errs)
	require.NotNil(t, req)
	assert.Equal(t, "ord-1", req.OrderID)
	assert.Equal(t, "usr-1", req.UserID)
	assert.Equal(t, []LineItem{{Price: 600, Quantity: 2}, {Price: 0, Quantity: 1}}, req.Items)
}

func TestValidateRequest_DecodeFailureIsDistinct(t *testing.T) {
	req, errs := ValidateRequest([]byte(`{not json`))

	assert.Nil(t, req)
	assert.Equal(t, []string{"request body must be valid JSON"}, errs)
}

func TestValidateRequest_NonObjectBody(t *testing.T) {
	req, errs := ValidateRequest([]byte(`[1, 2, 3]`))

	assert.Nil(t, req)
	assert.Equal(t, []string{"request body must be a JSON object"}, errs)
}

func TestValidateRequest_CollectsAllViolations(t *testing.T) {
	req, errs := ValidateRequest([]byte(`{}`))

	assert.Nil(t, req)
	assert.Equal(t, []string{
		"orderId must be a non-empty string",
		"userId must be a non-empty string",
		"items must be a non-empty array",
	}, errs)
}

func TestValidateRequest_FieldRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "empty orderId",
			body: `{"orderId": "", "userId": "u", "items": [{"price": 1, "quantity": 1}]}`,
			want: []string{"orderId must be a non-empty string"},
		},
		{
			name: "orderId wrong type is a schema error",
			body: `{"orderId": 42, "userId": "u", "items": [{"price": 1, "quantity": 1}]}`,
			want: []string{"orderId must be a non-empty string"},
		},
		{
			name: "missing userId",
			body: `{"orderId": "o", "items": [{"price": 1, "quantity": 1}]}`,
			want: []string{"userId must be a non-empty string"},
		},
		{
			name: "empty items array",
			body: `{"orderId": "o", "userId": "u", "items": []}`,
			want: []string{"items must be a non-empty array"},
		},
		{
			name: "items wrong type",
			body: `{"orderId": "o", "userId": "u", "items": "nope"}`,
			want: []string{"items must be a non-empty array"},
		},
		{
			name: "non-numeric price",
			body: `{"orderId": "o", "userId": "u", "items": [{"price": "9", "quantity": 1}]}`,
			want: []string{"items[0].price must be a finite number"},
		},
		{
			name: "missing quantity",
			body: `{"orderId": "o", "userId": "u", "items": [{"price": 9}]}`,
			want: []string{"items[0].quantity must be a finite number"},
		},
		{
			name: "non-object item",
			body: `{"orderId": "o", "userId": "u", "items": [7]}`,
			want: []string{"items[0] must be an object"},
		},
		{
			name: "violations on several items are all reported",
			body: `{"orderId": "o", "userId": "u", "items": [{"price": 1, "quantity": 1}, {"price": "x"}, {"quantity": true}]}`,
			want: []string{
				"items[1].price must be a finite number",
				"items[1].quantity must be a finite number",
				"items[2].price must be a finite number",
				"items[2].quantity must be a finite number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := ValidateRequest([]byte(tt.body))
			assert.Nil(t, req)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidateRequest_ZeroAndNegativeValuesAccepted(t *testing.T) {
	req, errs := ValidateRequest([]byte(`{
		"orderId": "o", "userId": "u",
		"items": [{"price": 0, "quantity": 0}, {"price": -5, "quantity": 2}]
	}`))

	require.Nil(t, errs)
	assert.Len(t, req.Items, 2)
}
