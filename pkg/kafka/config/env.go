package kafka_config

const (
	EnvKafkaBrokers = "KAFKA_BROKERS"

	EnvKafkaOutboundTopic    = "KAFKA_OUTBOUND_TOPIC"
	EnvKafkaOutboundDLQTopic = "KAFKA_OUTBOUND_DLQ_TOPIC"
	EnvKafkaConsumerGroupID  = "KAFKA_CONSUMER_GROUP_ID"

	EnvKafkaProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvKafkaProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"

	EnvKafkaConsumerMinBytes       = "KAFKA_CONSUMER_MIN_BYTES"
	EnvKafkaConsumerMaxBytes       = "KAFKA_CONSUMER_MAX_BYTES"
	EnvKafkaConsumerMaxWait        = "KAFKA_CONSUMER_MAX_WAIT"
	EnvKafkaConsumerCommitInterval = "KAFKA_CONSUMER_COMMIT_INTERVAL"
	EnvKafkaConsumerMaxRetries     = "KAFKA_CONSUMER_MAX_RETRIES"
)
