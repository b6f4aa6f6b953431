package audit

import (
	"strings"

	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
)

// posthogDistinctID groups all audit events under one PostHog person.
const posthogDistinctID = "money-ops-audit"

// EventEnqueuer is the part of utils.PosthogClientWrapper the sink needs.
type EventEnqueuer interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// PosthogSink reports each record as a PostHog event named money_<operation>.
type PosthogSink struct {
	client EventEnqueuer
}

func NewPosthogSink(client EventEnqueuer) *PosthogSink {
	return &PosthogSink{client: client}
}

var _ ports.MoneyAuditPort = (*PosthogSink)(nil)

func (s *PosthogSink) RecordOperation(operation string, source domain.Money, result domain.Money) {
	s.client.Enqueue(posthogDistinctID, "money_"+strings.ToLower(operation), map[string]any{
		"operation":       operation,
		"source_amount":   source.Amount().String(),
		"source_currency": source.Currency(),
		"result_amount":   result.Amount().String(),
		"result_currency": result.Currency(),
	})
}
