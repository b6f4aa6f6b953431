package services

import (
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GrowthDiscountSvc applies percentage changes to a Money value.
type GrowthDiscountSvc interface {
	// ApplyGrowth increases base by ratePercent percent.
	ApplyGrowth(base domain.Money, ratePercent decimal.Decimal) (domain.Money, error)

	// ApplyDiscount decreases base by discountPercent percent, which must lie in [0, 100].
	ApplyDiscount(base domain.Money, discountPercent decimal.Decimal) (domain.Money, error)
}

// TransferSvc moves an amount between two balances of the same currency.
type TransferSvc interface {
	Transfer(source domain.Money, destination domain.Money, amount decimal.Decimal) (domain.TransferResult, error)
}
