package services

import (
	"github.com/SscSPs/money_ops/internal/apperrors"
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
	portssvc "github.com/SscSPs/money_ops/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	MsgBaseNull                = "base money must not be null"
	MsgRatePercentNegative     = "rate percent must not be negative"
	MsgDiscountPercentOutRange = "discount percent must be between 0 and 100"
)

var hundred = decimal.NewFromInt(100)

// GrowthDiscountService applies percentage growth and discounts to Money values.
type GrowthDiscountService struct {
	audit ports.MoneyAuditPort
}

// NewGrowthDiscountService creates a GrowthDiscountService reporting to audit.
func NewGrowthDiscountService(audit ports.MoneyAuditPort) *GrowthDiscountService {
	return &GrowthDiscountService{audit: audit}
}

var _ portssvc.GrowthDiscountSvc = (*GrowthDiscountService)(nil)

// ApplyGrowth returns base * (1 + ratePercent/100), unrounded.
func (s *GrowthDiscountService) ApplyGrowth(base domain.Money, ratePercent decimal.Decimal) (domain.Money, error) {
	if base.IsZero() {
		return domain.Money{}, apperrors.NewInvalidArgument(MsgBaseNull)
	}
	if ratePercent.IsNegative() {
		return domain.Money{}, apperrors.NewInvalidArgument(MsgRatePercentNegative)
	}

	multiplier := decimal.NewFromInt(1).Add(ratePercent.Shift(-2))
	result, err := base.Multiply(multiplier)
	if err != nil {
		return domain.Money{}, err
	}

	s.audit.RecordOperation(ports.OperationGrowth, base, result)
	return result, nil
}

// ApplyDiscount returns base * (1 - discountPercent/100), unrounded.
// A 100 percent discount yields zero.
func (s *GrowthDiscountService) ApplyDiscount(base domain.Money, discountPercent decimal.Decimal) (domain.Money, error) {
	if base.IsZero() {
		return domain.Money{}, apperrors.NewInvalidArgument(MsgBaseNull)
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return domain.Money{}, apperrors.NewInvalidArgument(MsgDiscountPercentOutRange)
	}

	retained := decimal.NewFromInt(1).Sub(discountPercent.Shift(-2))
	result, err := base.Multiply(retained)
	if err != nil {
		return domain.Money{}, err
	}

	s.audit.RecordOperation(ports.OperationDiscount, base, result)
	return result, nil
}
