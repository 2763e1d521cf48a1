package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	kafka_config "frontdesk/pkg/kafka/config"
	"frontdesk/pkg/logger"
)

type Consumer struct {
	reader     *kafka.Reader
	dlqWriter  *kafka.Writer
	topic      string
	groupID    string
	maxRetries int
	handler    MessageHandler
	log        *logger.Logger
	closed     bool
	mu         sync.RWMutex
	wg         sync.WaitGroup
}

func NewConsumer(cfg *kafka_config.Config, topic string, groupID string, dlqTopic string, handler MessageHandler, log *logger.Logger) (*Consumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	consumer := &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			Topic:          topic,
			GroupID:        groupID,
			MinBytes:       cfg.ConsumerMinBytes,
			MaxBytes:       cfg.ConsumerMaxBytes,
			MaxWait:        cfg.ConsumerMaxWait,
			CommitInterval: cfg.ConsumerCommitInterval,
			Logger:         kafka.LoggerFunc(func(msg string, args ...any) {}),
			ErrorLogger:    kafka.LoggerFunc(func(msg string, args ...any) { log.Error(fmt.Sprintf(msg, args...)) }),
		}),
		topic:      topic,
		groupID:    groupID,
		maxRetries: cfg.ConsumerMaxRetries,
		handler:    handler,
		log:        log,
	}

	if dlqTopic != "" {
		consumer.dlqWriter = &kafka.Writer{
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

	return consumer, nil
}

// Start consumes until the context is cancelled. Handler failures are
// retried for transient errors, then dead-lettered; the offset is always
// committed so one poison message cannot stall the partition.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrConsumerClosed
	}
	c.mu.RUnlock()

	c.wg.Add(1)
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			kafkaMsg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				c.log.Error("Failed to fetch message", "topic", c.topic, "error", err)
				time.Sleep(1 * time.Second)
				continue
			}

			msg := c.convertMessage(kafkaMsg)
			if err := c.processMessage(ctx, msg); err != nil {
				c.log.Error("Failed to process message",
					"topic", c.topic,
					"key", msg.Key,
					"event_id", msg.GetEventID(),
					"error", err,
				)
			}

			if err := c.reader.CommitMessages(ctx, kafkaMsg); err != nil {
				c.log.Error("Failed to commit offset", "topic", c.topic, "error", err)
			}
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg Message) error {
	err := c.handler(ctx, msg)
	if err == nil {
		return nil
	}

	retries := msg.GetRetryCount()
	if ShouldRetry(err, retries, c.maxRetries) {
		msg.IncrementRetryCount()
		c.log.Warn("Retrying message",
			"topic", c.topic,
			"key", msg.Key,
			"attempt", retries+1,
			"max_retries", c.maxRetries,
			"error", err,
		)
		return c.processMessage(ctx, msg)
	}

	if c.dlqWriter != nil {
		if dlqErr := c.sendToDLQ(ctx, msg, err); dlqErr != nil {
			c.log.Error("Failed to send message to DLQ",
				"topic", c.topic,
				"key", msg.Key,
				"dlq_error", dlqErr,
				"original_error", err,
			)
		} else {
			c.log.Warn("Message sent to DLQ",
				"topic", c.topic,
				"key", msg.Key,
				"retries", retries,
				"error", err,
			)
		}
	}

	return err
}

func (c *Consumer) sendToDLQ(ctx context.Context, msg Message, originalErr error) error {
	msg.Headers[HeaderOriginalTopic] = c.topic
	msg.Headers["dlq-error"] = originalErr.Error()
	msg.Headers["dlq-timestamp"] = time.Now().Format(time.RFC3339)
	msg.Headers["dlq-consumer-group"] = c.groupID

	kafkaMsg := toKafkaMessage(msg)
	kafkaMsg.Time = time.Now()
	return c.dlqWriter.WriteMessages(ctx, kafkaMsg)
}

func (c *Consumer) convertMessage(kafkaMsg kafka.Message) Message {
	msg := Message{
		Key:       string(kafkaMsg.Key),
		Value:     kafkaMsg.Value,
		Headers:   make(map[string]string),
		Topic:     kafkaMsg.Topic,
		Partition: kafkaMsg.Partition,
		Offset:    kafkaMsg.Offset,
		Timestamp: kafkaMsg.Time,
	}
	for _, header := range kafkaMsg.Headers {
		msg.Headers[header.Key] = string(header.Value)
	}
	return msg
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.wg.Wait()

	err := c.reader.Close()
	if c.dlqWriter != nil {
		if dlqErr := c.dlqWriter.Close(); err == nil {
			err = dlqErr
		}
	}
	return err
}
