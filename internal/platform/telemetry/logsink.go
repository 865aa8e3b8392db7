package telemetry

import (
	"context"
	"log/slog"

	"ruleset/internal/shared/events"
)

// LogSink writes envelopes to the structured log. Used when no Postgres DSN
// is configured so journaled telemetry still surfaces somewhere.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Append(_ context.Context, envelope events.Envelope) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("telemetry event",
		"event", "telemetry_event",
		"module", "internal/platform/telemetry",
		"layer", "platform",
		"event_type", envelope.EventType,
		"event_id", envelope.EventID,
		"entity_type", envelope.EntityType,
		"entity_id", envelope.EntityID,
	)
	return nil
}
