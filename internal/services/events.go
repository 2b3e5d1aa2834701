package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// publishTimeout bounds a single Kafka write; hooks run on the request goroutine.
const publishTimeout = 3 * time.Second

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MatchEventPublisher is the sink services hand lifecycle events to.
type MatchEventPublisher interface {
	Publish(ctx context.Context, event models.MatchEvent)
}

// AfterCommitFunc schedules fn to run once the current transaction commits.
type AfterCommitFunc func(ctx context.Context, fn func())

// EventPublisher writes match events to Kafka once the surrounding transaction has committed.
type EventPublisher struct {
	writer      KafkaWriter
	afterCommit AfterCommitFunc
}

// NewEventPublisher creates a publisher. A nil writer disables publishing;
// a nil afterCommit publishes immediately.
func NewEventPublisher(writer KafkaWriter, afterCommit AfterCommitFunc) *EventPublisher {
	return &EventPublisher{writer: writer, afterCommit: afterCommit}
}

// Publish fills in the event id and timestamp and schedules the write.
func (p *EventPublisher) Publish(ctx context.Context, event models.MatchEvent) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	if p.afterCommit == nil {
		p.write(ctx, event)
		return
	}
	p.afterCommit(ctx, func() {
		p.write(ctx, event)
	})
}

func (p *EventPublisher) write(ctx context.Context, event models.MatchEvent) {
	log := logger.FromContext(ctx)

	if p.writer == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.RequestID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	// The request may already be finished by the time the transaction commits.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "request_id", event.RequestID)
	}
}
