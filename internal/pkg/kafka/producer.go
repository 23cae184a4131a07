package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Producer publishes transform audit events. Publishing is fire-and-forget
// from the caller's point of view; a failed publish never fails the request.
type Producer interface {
	SendEvent(ctx context.Context, event interface{}) error
	Close() error
}

type auditProducer struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

func NewProducer(log *logrus.Logger, brokers string, topic string) Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", brokers)
	if err != nil {
		log.WithError(err).Warn("Kafka connection failed, audit events will be logged only")
		return &noopProducer{log: log}
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}

	if err := conn.CreateTopics(topicConfigs...); err != nil {
		log.WithError(err).Debug("Could not create topic (might already exist)")
	}

	log.WithField("brokers", brokers).Info("Kafka audit producer connected")
	return &auditProducer{writer: writer, log: log}
}

func (p *auditProducer) SendEvent(ctx context.Context, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte("image-transform"),
		Value: payload,
		Time:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.WithError(err).Error("Failed to write audit event to Kafka")
		return err
	}

	return nil
}

func (p *auditProducer) Close() error {
	return p.writer.Close()
}

// noopProducer keeps the service running when the broker is disabled or
// unreachable.
type noopProducer struct {
	log *logrus.Logger
}

func NewNoopProducer(log *logrus.Logger) Producer {
	return &noopProducer{log: log}
}

func (m *noopProducer) SendEvent(_ context.Context, event interface{}) error {
	m.log.WithField("event", event).Debug("Audit event (no broker)")
	return nil
}

func (m *noopProducer) Close() error {
	return nil
}
