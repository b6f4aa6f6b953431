package services

import (
	"github.com/SscSPs/money_ops/internal/apperrors"
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
	portssvc "github.com/SscSPs/money_ops/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	MsgSourceNull             = "source must not be null"
	MsgDestinationNull        = "destination must not be null"
	MsgTransferAmountNegative = "transfer amount must not be negative"
	MsgInsufficientFunds      = "insufficient funds"
)

// TransferService moves amounts between two balances of the same currency.
// It works on the snapshots it is given; keeping a shared ledger consistent
// across concurrent transfers is up to the caller.
type TransferService struct {
	audit ports.MoneyAuditPort
}

// NewTransferService creates a TransferService reporting to audit.
func NewTransferService(audit ports.MoneyAuditPort) *TransferService {
	return &TransferService{audit: audit}
}

var _ portssvc.TransferSvc = (*TransferService)(nil)

// Transfer debits amount from source and credits it to destination.
// Only the source leg is reported to the audit port.
func (s *TransferService) Transfer(source domain.Money, destination domain.Money, amount decimal.Decimal) (domain.TransferResult, error) {
	if source.IsZero() {
		return domain.TransferResult{}, apperrors.NewInvalidArgument(MsgSourceNull)
	}
	if destination.IsZero() {
		return domain.TransferResult{}, apperrors.NewInvalidArgument(MsgDestinationNull)
	}
	if amount.IsNegative() {
		return domain.TransferResult{}, apperrors.NewInvalidArgument(MsgTransferAmountNegative)
	}
	if source.Currency() != destination.Currency() {
		return domain.TransferResult{}, apperrors.NewInvalidArgument(domain.MsgCurrencyMismatch)
	}
	if source.Amount().LessThan(amount) {
		return domain.TransferResult{}, apperrors.NewInvalidArgument(MsgInsufficientFunds)
	}

	transferMoney, err := domain.NewMoney(amount, source.Currency())
	if err != nil {
		return domain.TransferResult{}, err
	}
	newSource, err := source.Subtract(transferMoney)
	if err != nil {
		return domain.TransferResult{}, err
	}
	newDestination, err := destination.Add(transferMoney)
	if err != nil {
		return domain.TransferResult{}, err
	}

	s.audit.RecordOperation(ports.OperationTransfer, source, newSource)
	return domain.TransferResult{NewSource: newSource, NewDestination: newDestination}, nil
}
