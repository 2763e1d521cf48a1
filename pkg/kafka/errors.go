package kafka

import (
	"errors"
	"strings"
)

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrConsumerClosed = errors.New("kafka consumer is closed")
	ErrEmptyKey       = errors.New("message key cannot be empty")
	ErrEmptyValue     = errors.New("message value cannot be empty")
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeTransient
	ErrorTypePermanent
)

// DeliveryError classifies a handler failure so the consumer knows
// whether to retry or go straight to the DLQ.
type DeliveryError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func NewTransientError(message string, err error) *DeliveryError {
	return &DeliveryError{Type: ErrorTypeTransient, Message: message, Err: err}
}

func NewPermanentError(message string, err error) *DeliveryError {
	return &DeliveryError{Type: ErrorTypePermanent, Message: message, Err: err}
}

var transientPatterns = []string{
	"connection refused",
	"timeout",
	"deadline exceeded",
	"no such host",
	"network is unreachable",
	"broken pipe",
	"connection reset",
	"i/o timeout",
	"temporary failure",
	"too many requests",
}

// ClassifyError maps an error to transient or permanent. Unclassifiable
// errors default to permanent so bad payloads cannot loop forever.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	var deliveryErr *DeliveryError
	if errors.As(err, &deliveryErr) {
		return deliveryErr.Type
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return ErrorTypeTransient
		}
	}

	return ErrorTypePermanent
}

func ShouldRetry(err error, currentRetries, maxRetries int) bool {
	if err == nil {
		return false
	}
	if currentRetries >= maxRetries {
		return false
	}
	return ClassifyError(err) == ErrorTypeTransient
}
