package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits reservation lifecycle events, keyed by facility so
// consumers see each facility's history in order.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event commands.ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal reservation event")
	}

	msg := kafka.Message{
		Key:   []byte(event.FacilityID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to write reservation event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event commands.ReservationEvent) error {
	slog.Debug("event publishing disabled", "type", event.Type, "reservation_id", event.ReservationID)
	return nil
}
