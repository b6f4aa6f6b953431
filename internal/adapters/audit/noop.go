package audit

import (
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
)

// NoOpSink discards every record.
type NoOpSink struct{}

var _ ports.MoneyAuditPort = NoOpSink{}

func (NoOpSink) RecordOperation(string, domain.Money, domain.Money) {}
