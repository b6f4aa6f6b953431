package dto

import (
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyRequest is an amount and currency as sent by a client.
type MoneyRequest struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required,decimal_gte=0"`
	Currency string           `json:"currency" binding:"required,notblank"`
}

// ToMoney builds the domain value, applying the domain's own checks.
func (r MoneyRequest) ToMoney() (domain.Money, error) {
	return domain.NewMoneyFromNull(nullDecimal(r.Amount), r.Currency)
}

// GrowthRequest asks for base to be grown by RatePercent percent.
type GrowthRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required,decimal_gte=0"`
	Currency    string           `json:"currency" binding:"required,notblank"`
	RatePercent *decimal.Decimal `json:"ratePercent" binding:"required,decimal_gte=0,decimal_lte=1000"`
}

// Base returns the Money the growth is applied to.
func (r GrowthRequest) Base() (domain.Money, error) {
	return MoneyRequest{Amount: r.Amount, Currency: r.Currency}.ToMoney()
}

// DiscountRequest asks for base to be reduced by DiscountPercent percent.
type DiscountRequest struct {
	Amount          *decimal.Decimal `json:"amount" binding:"required,decimal_gte=0"`
	Currency        string           `json:"currency" binding:"required,notblank"`
	DiscountPercent *decimal.Decimal `json:"discountPercent" binding:"required,decimal_gte=0,decimal_lte=100"`
}

// Base returns the Money the discount is applied to.
func (r DiscountRequest) Base() (domain.Money, error) {
	return MoneyRequest{Amount: r.Amount, Currency: r.Currency}.ToMoney()
}

// TransferRequest moves Amount from Source to Destination.
type TransferRequest struct {
	Source      *MoneyRequest    `json:"source" binding:"required"`
	Destination *MoneyRequest    `json:"destination" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required,decimal_gte=0"`
}

// MoneyResponse defines the data returned for a Money value.
type MoneyResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// TransferResponse holds both balances after a transfer.
type TransferResponse struct {
	Source      MoneyResponse `json:"source"`
	Destination MoneyResponse `json:"destination"`
}

// ApiErrorResponse carries a single error message.
type ApiErrorResponse struct {
	Message string `json:"message"`
}

// FieldValidationError names one request field that failed validation.
type FieldValidationError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrorResponse lists every field that failed validation.
type ValidationErrorResponse struct {
	Message string                 `json:"message"`
	Errors  []FieldValidationError `json:"errors"`
}

// ToMoneyResponse converts a domain.Money to MoneyResponse DTO
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount(), Currency: m.Currency()}
}

// ToTransferResponse converts a domain.TransferResult to TransferResponse DTO
func ToTransferResponse(r domain.TransferResult) TransferResponse {
	return TransferResponse{
		Source:      ToMoneyResponse(r.NewSource),
		Destination: ToMoneyResponse(r.NewDestination),
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
