package producer

import (
	"context"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publishEvent keys messages by aggregate so every event for one employee
// lands on the same partition, in order.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "company_id", Value: []byte(event.CompanyID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
