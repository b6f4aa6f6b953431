package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
	"github.com/SscSPs/money_ops/internal/utils/mapping"
)

// DefaultSaveTimeout bounds a single repository write.
const DefaultSaveTimeout = 3 * time.Second

// RepositorySink persists each record through an AuditRecordRepository.
// Write failures are logged and otherwise dropped.
type RepositorySink struct {
	repo    ports.AuditRecordRepository
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewRepositorySink creates a RepositorySink writing through repo.
func NewRepositorySink(repo ports.AuditRecordRepository, logger *slog.Logger, timeout time.Duration) *RepositorySink {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	return &RepositorySink{repo: repo, logger: logger, timeout: timeout, now: time.Now}
}

var _ ports.MoneyAuditPort = (*RepositorySink)(nil)

func (s *RepositorySink) RecordOperation(operation string, source domain.Money, result domain.Money) {
	record := mapping.ToModelAuditRecord(operation, source, result, s.now())

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.SaveAuditRecord(ctx, record); err != nil {
		s.logger.Error("Failed to persist audit record",
			slog.String("audit_record_id", record.AuditRecordID),
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
	}
}
