package domain

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/SscSPs/money_ops/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Rejection reasons reported by Money construction and arithmetic.
const (
	MsgAmountNull         = "amount must not be null"
	MsgAmountNegative     = "amount must not be negative"
	MsgCurrencyBlank      = "currency must not be blank"
	MsgOperandNull        = "money operand must not be null"
	MsgCurrencyMismatch   = "currencies must match"
	MsgNegativeResult     = "resulting amount must not be negative"
	MsgMultiplierNegative = "multiplier must not be negative"
)

// Money is an immutable non-negative amount in a single currency.
// The zero value is not a valid Money; it stands for an absent operand.
// Compare values with Equal, never with ==, since equal amounts may differ in scale.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates amount and currency and returns a Money with the
// currency trimmed and uppercased. The amount is stored unchanged.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, apperrors.NewInvalidArgument(MsgAmountNegative)
	}
	normalized := strings.ToUpper(strings.TrimSpace(currency))
	if normalized == "" {
		return Money{}, apperrors.NewInvalidArgument(MsgCurrencyBlank)
	}
	return Money{amount: amount, currency: normalized}, nil
}

// NewMoneyFromNull is NewMoney for amounts that may be absent.
func NewMoneyFromNull(amount decimal.NullDecimal, currency string) (Money, error) {
	if !amount.Valid {
		return Money{}, apperrors.NewInvalidArgument(MsgAmountNull)
	}
	return NewMoney(amount.Decimal, currency)
}

// Amount returns the stored amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the normalized currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether m is the zero value, i.e. was never constructed.
func (m Money) IsZero() bool {
	return m.currency == ""
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkOperand(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns m - other. The difference must not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkOperand(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, apperrors.NewInvalidArgument(MsgNegativeResult)
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply returns m * factor without rounding.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, apperrors.NewInvalidArgument(MsgMultiplierNegative)
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency}, nil
}

// Equal reports whether both values hold numerically equal amounts in the same currency.
// 12.50 USD equals 12.5 USD.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Hash is consistent with Equal: it is computed from the amount with trailing zeros removed.
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(m.canonicalAmount()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(m.currency))
	return h.Sum64()
}

func (m Money) String() string {
	amount := m.amount.String()
	if exp := m.amount.Exponent(); exp < 0 {
		amount = m.amount.StringFixed(-exp)
	}
	return fmt.Sprintf("Money{amount=%s, currency='%s'}", amount, m.currency)
}

// canonicalAmount renders the amount with no trailing fractional zeros,
// so 15.0000 and 15 produce the same text.
func (m Money) canonicalAmount() string {
	return m.amount.String()
}

func (m Money) checkOperand(other Money) error {
	if other.IsZero() {
		return apperrors.NewInvalidArgument(MsgOperandNull)
	}
	if m.currency != other.currency {
		return apperrors.NewInvalidArgument(MsgCurrencyMismatch)
	}
	return nil
}
