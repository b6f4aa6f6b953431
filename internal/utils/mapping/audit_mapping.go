package mapping

import (
	"time"

	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/models"
	"github.com/google/uuid"
)

// ToModelAuditRecord builds the stored form of an audited operation with a fresh ID.
func ToModelAuditRecord(operation string, source domain.Money, result domain.Money, recordedAt time.Time) models.AuditRecord {
	return models.AuditRecord{
		AuditRecordID:  uuid.NewString(),
		Operation:      operation,
		SourceAmount:   source.Amount(),
		SourceCurrency: source.Currency(),
		ResultAmount:   result.Amount(),
		ResultCurrency: result.Currency(),
		RecordedAt:     recordedAt.UTC(),
	}
}
