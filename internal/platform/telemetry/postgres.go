package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ruleset/internal/shared/events"
)

// PostgresSink persists envelopes into the market_events table.
type PostgresSink struct {
	db *gorm.DB
}

func NewPostgresSink(db *gorm.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&marketEventModel{})
}

func (s *PostgresSink) Append(ctx context.Context, envelope events.Envelope) error {
	payload, err := json.Marshal(envelope.Payload)
	if err != nil {
		return fmt.Errorf("encode telemetry payload: %w", err)
	}
	model := marketEventModel{
		EventID:       envelope.EventID,
		EventType:     envelope.EventType,
		SourceService: envelope.SourceService,
		EntityType:    envelope.EntityType,
		EntityID:      envelope.EntityID,
		Payload:       payload,
		OccurredAt:    envelope.OccurredAtUTC,
	}
	return s.db.WithContext(ctx).Create(&model).Error
}

type marketEventModel struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EventID       string    `gorm:"column:event_id;size:64;uniqueIndex"`
	EventType     string    `gorm:"column:event_type;size:128;index"`
	SourceService string    `gorm:"column:source_service;size:128"`
	EntityType    string    `gorm:"column:entity_type;size:64"`
	EntityID      string    `gorm:"column:entity_id;size:64;index"`
	Payload       []byte    `gorm:"column:payload;type:jsonb"`
	OccurredAt    time.Time `gorm:"column:occurred_at"`
}

func (marketEventModel) TableName() string {
	return "market_events"
}
