package kafka_config

import "time"

const (
	DefaultKafkaBrokers = "localhost:9092"

	DefaultOutboundTopic    = "frontdesk.outbound-messages"
	DefaultOutboundDLQTopic = "frontdesk.outbound-messages.dlq"
	DefaultConsumerGroupID  = "frontdesk-notifier"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // all replicas

	DefaultConsumerMinBytes       = 1
	DefaultConsumerMaxBytes       = 10 * 1024 * 1024 // 10MB
	DefaultConsumerMaxWait        = 500 * time.Millisecond
	DefaultConsumerCommitInterval = 1 * time.Second
	DefaultConsumerMaxRetries     = 3
)
