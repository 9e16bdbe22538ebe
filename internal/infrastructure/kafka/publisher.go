// Package kafka publishes outbox payloads to Kafka.
package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher writes messages to Kafka topics.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Publisher for the given brokers. The topic is
// set per message, so one writer serves every outbox topic.
func NewPublisher(brokers []string, writeTimeout time.Duration) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: writeTimeout,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish writes payload to topic.
func (p *Publisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
