package audit

import (
	"log/slog"

	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
)

// LogSink writes each record as one structured log line.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger falls back to slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With(slog.String("component", "money_audit"))}
}

var _ ports.MoneyAuditPort = (*LogSink)(nil)

func (s *LogSink) RecordOperation(operation string, source domain.Money, result domain.Money) {
	s.logger.Info("Money operation recorded",
		slog.String("operation", operation),
		slog.String("source_amount", source.Amount().String()),
		slog.String("source_currency", source.Currency()),
		slog.String("result_amount", result.Amount().String()),
		slog.String("result_currency", result.Currency()),
	)
}
