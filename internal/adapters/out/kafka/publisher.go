// Package kafka forwards outbox notifications to Kafka topics, one topic per
// notification kind.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fastex/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// Message is the JSON payload consumed by the mailer.
type Message struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	BookingID string    `json:"booking_id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes notifications synchronously so the outbox row is marked
// published only after the broker acknowledged it.
type Publisher struct {
	writer      messageWriter
	topicPrefix string
}

// NewPublisher creates a publisher for brokers. Topics are named
// "<topicPrefix>.<kind>".
func NewPublisher(brokers []string, topicPrefix string) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, topicPrefix)
}

// NewPublisherWithWriter creates a publisher over an existing writer. The writer
// must not have a fixed Topic.
func NewPublisherWithWriter(writer messageWriter, topicPrefix string) *Publisher {
	return &Publisher{writer: writer, topicPrefix: topicPrefix}
}

// Topic returns the topic a notification kind is published to.
func (p *Publisher) Topic(kind notification.Kind) string {
	return fmt.Sprintf("%s.%s", p.topicPrefix, kind)
}

// Publish writes one notification keyed by its booking id, so all messages of
// a booking land on the same partition in order.
func (p *Publisher) Publish(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(Message{
		ID:        n.ID().String(),
		Kind:      string(n.Kind()),
		BookingID: n.BookingID().String(),
		Recipient: n.Recipient(),
		Subject:   n.Subject(),
		Body:      n.Body(),
		CreatedAt: n.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.Topic(n.Kind()),
		Key:   []byte(n.BookingID().String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(n.Kind())},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
