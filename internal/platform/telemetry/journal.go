package telemetry

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ruleset/internal/shared/events"
)

// Journal buffers telemetry envelopes for asynchronous persistence.
// Recording never blocks a request path: when the buffer is full the
// envelope is dropped and a warning is logged.
type Journal struct {
	buffer chan events.Envelope
	logger *slog.Logger
	source string
}

func NewJournal(sourceService string, bufferSize int, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &Journal{
		buffer: make(chan events.Envelope, bufferSize),
		logger: logger,
		source: sourceService,
	}
}

// Record enqueues an envelope. Safe to call on a nil journal, which makes
// telemetry a no-op when the journal is disabled.
func (j *Journal) Record(envelope events.Envelope) {
	if j == nil {
		return
	}
	if envelope.EventID == "" {
		envelope.EventID = uuid.NewString()
	}
	if envelope.OccurredAtUTC.IsZero() {
		envelope.OccurredAtUTC = time.Now().UTC()
	}
	if envelope.SourceService == "" {
		envelope.SourceService = j.source
	}
	select {
	case j.buffer <- envelope:
	default:
		j.logger.Warn("telemetry envelope dropped",
			"event", "telemetry_envelope_dropped",
			"module", "internal/platform/telemetry",
			"layer", "platform",
			"event_type", envelope.EventType,
			"entity_id", envelope.EntityID,
		)
	}
}

// RecordEvent journals a domain happening keyed by event type.
func (j *Journal) RecordEvent(eventType, entityType, entityID string, payload any) {
	j.Record(events.Envelope{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payload,
	})
}

// RecordScore journals a computed score snapshot for later analysis.
func (j *Journal) RecordScore(scoreType, entityType, entityID string, scoreValue float64, metadata any) {
	j.Record(events.Envelope{
		EventType:  "score." + scoreType,
		EntityType: entityType,
		EntityID:   entityID,
		Payload: map[string]any{
			"score_type":  scoreType,
			"score_value": scoreValue,
			"metadata":    metadata,
		},
	})
}

// Events exposes the buffered stream for the relay.
func (j *Journal) Events() <-chan events.Envelope {
	if j == nil {
		return nil
	}
	return j.buffer
}
