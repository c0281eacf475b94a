package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validCreate() CreateTradeRequest {
	return CreateTradeRequest{
		Brand:        strPtr("Amazon"),
		CardCurrency: strPtr("USD"),
		Amount:       floatPtr(50),
		Email:        strPtr("a@b.com"),
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	return errs
}

func TestCreateTradeRequestDefaults(t *testing.T) {
	req := validCreate()
	require.NoError(t, req.Validate())

	trade := req.ToEntity()

	assert.Equal(t, StatusPending, trade.Status)
	assert.Equal(t, "NGN", trade.PayoutCurrency)
	assert.Equal(t, PayoutBank, trade.PayoutMethod)
	assert.Equal(t, 50.0, trade.Amount)
	assert.Nil(t, trade.Country)
	assert.Nil(t, trade.CreatedAt)
	assert.Nil(t, trade.UpdatedAt)
	assert.Empty(t, trade.ID)
}

func TestCreateTradeRequestKeepsExplicitValues(t *testing.T) {
	req := validCreate()
	req.Status = strPtr(StatusReview)
	req.PayoutCurrency = strPtr("GHS")
	req.PayoutMethod = strPtr(PayoutMobileMoney)
	req.Code = strPtr("XXXX-YYYY")
	require.NoError(t, req.Validate())

	trade := req.ToEntity()

	assert.Equal(t, StatusReview, trade.Status)
	assert.Equal(t, "GHS", trade.PayoutCurrency)
	assert.Equal(t, PayoutMobileMoney, trade.PayoutMethod)
	assert.Equal(t, "XXXX-YYYY", *trade.Code)
}

func TestCreateTradeRequestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateTradeRequest)
		field  string
	}{
		{"missing brand", func(r *CreateTradeRequest) { r.Brand = nil }, "brand"},
		{"missing amount", func(r *CreateTradeRequest) { r.Amount = nil }, "amount"},
		{"zero amount", func(r *CreateTradeRequest) { r.Amount = floatPtr(0) }, "amount"},
		{"negative amount", func(r *CreateTradeRequest) { r.Amount = floatPtr(-5) }, "amount"},
		{"bad email", func(r *CreateTradeRequest) { r.Email = strPtr("not-an-email") }, "email"},
		{"missing email", func(r *CreateTradeRequest) { r.Email = nil }, "email"},
		{"unknown card currency", func(r *CreateTradeRequest) { r.CardCurrency = strPtr("JPY") }, "card_currency"},
		{"lower-case card currency", func(r *CreateTradeRequest) { r.CardCurrency = strPtr("usd") }, "card_currency"},
		{"unknown status", func(r *CreateTradeRequest) { r.Status = strPtr("done") }, "status"},
		{"unknown payout currency", func(r *CreateTradeRequest) { r.PayoutCurrency = strPtr("CAD") }, "payout_currency"},
		{"unknown payout method", func(r *CreateTradeRequest) { r.PayoutMethod = strPtr("cash") }, "payout_method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			errs := fieldErrors(t, req.Validate())

			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestUpdateTradeRequest(t *testing.T) {
	assert.True(t, UpdateTradeRequest{}.IsEmpty())
	assert.NoError(t, UpdateTradeRequest{}.Validate())

	req := UpdateTradeRequest{Status: strPtr(StatusApproved)}
	assert.False(t, req.IsEmpty())
	assert.NoError(t, req.Validate())

	notesOnly := UpdateTradeRequest{Notes: strPtr("checked")}
	assert.False(t, notesOnly.IsEmpty())

	bad := UpdateTradeRequest{Status: strPtr("APPROVED")}
	assert.Contains(t, fieldErrors(t, bad.Validate()), "status")
}

func TestSchemaContainsTradeDeclaration(t *testing.T) {
	src := Schema()

	assert.Contains(t, src, "type Trade struct")
	assert.Contains(t, src, `bson:"payout_method"`)
	assert.NotContains(t, src, "type Filter")
}
