package services_test

import (
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock MoneyAuditPort ---
type MockMoneyAuditPort struct {
	mock.Mock
}

func (m *MockMoneyAuditPort) RecordOperation(operation string, source domain.Money, result domain.Money) {
	m.Called(operation, source, result)
}

var _ ports.MoneyAuditPort = (*MockMoneyAuditPort)(nil)

// moneyEq matches a Money argument numerically equal to want.
func moneyEq(want domain.Money) interface{} {
	return mock.MatchedBy(func(got domain.Money) bool {
		return got.Equal(want)
	})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func money(amount, currency string) domain.Money {
	m, err := domain.NewMoney(dec(amount), currency)
	if err != nil {
		panic(err)
	}
	return m
}
