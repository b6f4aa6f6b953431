package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditRecord is the stored form of one audited money operation.
type AuditRecord struct {
	AuditRecordID  string          `json:"auditRecordID"` // Primary Key (UUID)
	Operation      string          `json:"operation"`     // GROWTH, DISCOUNT or TRANSFER
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	SourceCurrency string          `json:"sourceCurrency"`
	ResultAmount   decimal.Decimal `json:"resultAmount"`
	ResultCurrency string          `json:"resultCurrency"`
	RecordedAt     time.Time       `json:"recordedAt"`
}
