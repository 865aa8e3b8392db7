package telemetry

import (
	"context"
	"log/slog"

	"ruleset/internal/shared/events"
)

// Sink persists journaled telemetry envelopes.
type Sink interface {
	Append(ctx context.Context, envelope events.Envelope) error
}

// Relay drains the journal into a sink. A failed append is logged and the
// envelope is discarded; telemetry must never wedge the process.
type Relay struct {
	Journal *Journal
	Sink    Sink
	Logger  *slog.Logger
}

func (r Relay) Run(ctx context.Context) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if r.Journal == nil || r.Sink == nil {
		return
	}

	logger.Info("telemetry relay started",
		"event", "telemetry_relay_started",
		"module", "internal/platform/telemetry",
		"layer", "platform",
	)

	for {
		select {
		case <-ctx.Done():
			return
		case envelope, open := <-r.Journal.Events():
			if !open {
				return
			}
			if err := r.Sink.Append(ctx, envelope); err != nil {
				logger.Error("telemetry append failed",
					"event", "telemetry_append_failed",
					"module", "internal/platform/telemetry",
					"layer", "platform",
					"event_type", envelope.EventType,
					"event_id", envelope.EventID,
					"error", err.Error(),
				)
			}
		}
	}
}
