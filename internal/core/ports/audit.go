package ports

import "github.com/SscSPs/money_ops/internal/core/domain"

// Operation names passed to MoneyAuditPort.RecordOperation.
const (
	OperationGrowth   = "GROWTH"
	OperationDiscount = "DISCOUNT"
	OperationTransfer = "TRANSFER"
)

// MoneyAuditPort receives a record of every completed money operation.
// Implementations are fire-and-forget: they report nothing back and must be
// safe for concurrent use.
type MoneyAuditPort interface {
	RecordOperation(operation string, source domain.Money, result domain.Money)
}
