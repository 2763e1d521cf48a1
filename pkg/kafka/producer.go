package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	kafka_config "frontdesk/pkg/kafka/config"
	"frontdesk/pkg/logger"
)

type Producer struct {
	writer    *kafka.Writer
	dlqWriter *kafka.Writer
	topic     string
	dlqTopic  string
	log       *logger.Logger
	closed    bool
	mu        sync.RWMutex
}

func NewProducer(cfg *kafka_config.Config, topic string, dlqTopic string, log *logger.Logger) (*Producer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	var requiredAcks kafka.RequiredAcks
	switch cfg.ProducerRequireAcks {
	case 0:
		requiredAcks = kafka.RequireNone
	case 1:
		requiredAcks = kafka.RequireOne
	default:
		requiredAcks = kafka.RequireAll
	}

	producer := &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{}, // hash by key keeps per-guest ordering
			RequiredAcks: requiredAcks,
			Compression:  kafka.Snappy,
			MaxAttempts:  cfg.ProducerMaxAttempts,
			BatchTimeout: cfg.ProducerBatchTimeout,
			Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
			ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...any) { log.Error(fmt.Sprintf(msg, args...)) }),
		},
		topic:    topic,
		dlqTopic: dlqTopic,
		log:      log,
	}

	if dlqTopic != "" {
		producer.dlqWriter = &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        dlqTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			MaxAttempts:  3,
			Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
			ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...any) { log.Error(fmt.Sprintf(msg, args...)) }),
		}
	}

	return producer, nil
}

func (p *Producer) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrProducerClosed
	}
	p.mu.RUnlock()

	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	start := time.Now()
	err := p.writer.WriteMessages(ctx, toKafkaMessage(msg))
	if err != nil {
		p.log.Error("Failed to publish message",
			"topic", p.topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		if p.dlqWriter != nil {
			if dlqErr := p.sendToDLQ(ctx, msg, err); dlqErr != nil {
				return fmt.Errorf("failed to send to DLQ: %v (original error: %v)", dlqErr, err)
			}
		}
		return err
	}

	p.log.Debug("Published message",
		"topic", p.topic,
		"key", msg.Key,
		"event_id", msg.GetEventID(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Producer) sendToDLQ(ctx context.Context, msg Message, originalErr error) error {
	msg.Headers[HeaderOriginalTopic] = p.topic
	msg.Headers["dlq-error"] = originalErr.Error()
	msg.Headers["dlq-timestamp"] = time.Now().Format(time.RFC3339)

	kafkaMsg := toKafkaMessage(msg)
	kafkaMsg.Time = time.Now()
	return p.dlqWriter.WriteMessages(ctx, kafkaMsg)
}

func toKafkaMessage(msg Message) kafka.Message {
	kafkaMsg := kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Timestamp,
	}
	for k, v := range msg.Headers {
		kafkaMsg.Headers = append(kafkaMsg.Headers, kafka.Header{
			Key:   k,
			Value: []byte(v),
		})
	}
	return kafkaMsg
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.writer.Close()
	if p.dlqWriter != nil {
		if dlqErr := p.dlqWriter.Close(); err == nil {
			err = dlqErr
		}
	}
	return err
}
