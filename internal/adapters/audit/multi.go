package audit

import (
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
)

// MultiSink forwards every record to each of its sinks in order.
type MultiSink []ports.MoneyAuditPort

var _ ports.MoneyAuditPort = MultiSink(nil)

func (m MultiSink) RecordOperation(operation string, source domain.Money, result domain.Money) {
	for _, sink := range m {
		sink.RecordOperation(operation, source, result)
	}
}
