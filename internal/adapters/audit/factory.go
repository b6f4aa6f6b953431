package audit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_ops/internal/adapters/database/pgsql"
	"github.com/SscSPs/money_ops/internal/core/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sink names accepted by Build.
const (
	SinkNoOp     = "noop"
	SinkLog      = "log"
	SinkPostgres = "postgres"
	SinkPosthog  = "posthog"
	SinkNats     = "nats"
)

// Dependencies carries the clients the configured sinks may need.
// Only the clients for the requested sinks must be set.
type Dependencies struct {
	Logger      *slog.Logger
	Pool        *pgxpool.Pool
	Posthog     EventEnqueuer
	Nats        Publisher
	NatsSubject string
}

// Build assembles the audit port for the named sinks. No names yields a NoOpSink;
// several names yield a MultiSink in the given order.
func Build(names []string, deps Dependencies) (ports.MoneyAuditPort, error) {
	sinks := make(MultiSink, 0, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		sink, err := buildSink(name, deps)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	switch len(sinks) {
	case 0:
		return NoOpSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return sinks, nil
	}
}

func buildSink(name string, deps Dependencies) (ports.MoneyAuditPort, error) {
	switch name {
	case SinkNoOp:
		return NoOpSink{}, nil
	case SinkLog:
		return NewLogSink(deps.Logger), nil
	case SinkPostgres:
		if deps.Pool == nil {
			return nil, fmt.Errorf("audit sink %q requires a database pool", name)
		}
		return NewRepositorySink(pgsql.NewPgxAuditRepository(deps.Pool), deps.Logger, DefaultSaveTimeout), nil
	case SinkPosthog:
		if deps.Posthog == nil {
			return nil, fmt.Errorf("audit sink %q requires a posthog client", name)
		}
		return NewPosthogSink(deps.Posthog), nil
	case SinkNats:
		if deps.Nats == nil {
			return nil, fmt.Errorf("audit sink %q requires a NATS connection", name)
		}
		return NewNatsSink(deps.Nats, deps.NatsSubject, deps.Logger), nil
	default:
		return nil, fmt.Errorf("unknown audit sink %q", name)
	}
}
