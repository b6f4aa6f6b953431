package ports

import (
	"context"

	"github.com/SscSPs/money_ops/internal/models"
)

// AuditRecordRepository persists audited money operations.
type AuditRecordRepository interface {
	SaveAuditRecord(ctx context.Context, record models.AuditRecord) error
}
