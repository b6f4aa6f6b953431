package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
	"github.com/SscSPs/money_ops/internal/utils/mapping"
	"github.com/nats-io/nats.go"
)

// DefaultNatsSubject is the subject audit records are published on when none is configured.
const DefaultNatsSubject = "money.audit"

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NatsSink publishes each record as JSON on a NATS subject.
type NatsSink struct {
	publisher Publisher
	subject   string
	logger    *slog.Logger
	now       func() time.Time
}

func NewNatsSink(publisher Publisher, subject string, logger *slog.Logger) *NatsSink {
	if subject == "" {
		subject = DefaultNatsSubject
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NatsSink{publisher: publisher, subject: subject, logger: logger, now: time.Now}
}

var _ ports.MoneyAuditPort = (*NatsSink)(nil)

func (s *NatsSink) RecordOperation(operation string, source domain.Money, result domain.Money) {
	record := mapping.ToModelAuditRecord(operation, source, result, s.now())
	payload, err := json.Marshal(record)
	if err != nil {
		s.logger.Error("Failed to encode audit record", slog.String("operation", operation), slog.String("error", err.Error()))
		return
	}
	if err := s.publisher.Publish(s.subject, payload); err != nil {
		s.logger.Error("Failed to publish audit record",
			slog.String("subject", s.subject),
			slog.String("audit_record_id", record.AuditRecordID),
			slog.String("error", err.Error()),
		)
	}
}

// ConnectNats opens a reconnecting NATS connection for the audit sink.
func ConnectNats(url string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("money-ops-audit"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS server", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("Reconnected to NATS server", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return conn, nil
}
