package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_ops/internal/core/ports"
	"github.com/SscSPs/money_ops/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAuditRepository creates a new repository for audit records.
func NewPgxAuditRepository(pool *pgxpool.Pool) ports.AuditRecordRepository {
	return &PgxAuditRepository{pool: pool}
}

// SaveAuditRecord appends one row to money_audit_log.
func (r *PgxAuditRepository) SaveAuditRecord(ctx context.Context, record models.AuditRecord) error {
	query := `
		INSERT INTO money_audit_log (audit_record_id, operation, source_amount, source_currency, result_amount, result_currency, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.pool.Exec(ctx, query,
		record.AuditRecordID,
		record.Operation,
		record.SourceAmount,
		record.SourceCurrency,
		record.ResultAmount,
		record.ResultCurrency,
		record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit record %s: %w", record.AuditRecordID, err)
	}
	return nil
}
