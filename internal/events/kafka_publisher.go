package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	publishAttempts  = 3
	publishBaseDelay = 100 * time.Millisecond
	sendTimeout      = 5 * time.Second
)

// KafkaEventPublisher implements EventPublisher using Kafka
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
	config   *config.Config
}

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(cfg *config.Config, logger *zap.Logger) (*KafkaEventPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = cfg.KafkaClientID
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = cfg.KafkaRetries
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Parse acks
	switch cfg.KafkaAcks {
	case "0":
		saramaConfig.Producer.RequiredAcks = sarama.NoResponse
	case "1":
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	}
	// Idempotent producers require acks=all
	if saramaConfig.Producer.RequiredAcks != sarama.WaitForAll {
		saramaConfig.Producer.Idempotent = false
	}

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info("Kafka publisher initialized",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("acks", cfg.KafkaAcks),
	)

	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
		config:   cfg,
	}, nil
}

// Publish publishes an event to Kafka with retries and exponential backoff
func (p *KafkaEventPublisher) Publish(ctx context.Context, event Event) error {
	topic, err := p.getTopicForEvent(event)
	if err != nil {
		return fmt.Errorf("failed to determine topic: %w", err)
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(eventJSON),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.EventType())},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	for attempt := 0; attempt < publishAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		err := p.send(ctx, message)
		if err == nil {
			return nil
		}
		p.logger.Warn("Failed to publish event to Kafka, retrying",
			zap.String("topic", topic),
			zap.String("event-type", event.EventType()),
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", publishAttempts),
		)

		// Exponential backoff: 100ms, 200ms
		if attempt < publishAttempts-1 {
			delay := publishBaseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("failed to publish event to Kafka after %d attempts", publishAttempts)
}

// send delivers one message, giving up after sendTimeout
func (p *KafkaEventPublisher) send(ctx context.Context, message *sarama.ProducerMessage) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		partition, offset, err := p.producer.SendMessage(message)
		if err == nil {
			p.logger.Debug("Event published to Kafka",
				zap.String("topic", message.Topic),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset),
			)
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-sendCtx.Done():
		return fmt.Errorf("timeout publishing event to Kafka: %w", sendCtx.Err())
	}
}

// Close closes the Kafka producer
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// getTopicForEvent determines the Kafka topic based on event type
func (p *KafkaEventPublisher) getTopicForEvent(event Event) (string, error) {
	switch event.(type) {
	case ItemAddedEvent, ItemUpdatedEvent, ItemDeletedEvent, QuantityAdjustedEvent:
		return p.config.KafkaTopicItems, nil
	case MovementRecordedEvent:
		return p.config.KafkaTopicMovements, nil
	case LocationCreatedEvent, LocationRenamedEvent, LocationDeletedEvent:
		return p.config.KafkaTopicLocations, nil
	default:
		return "", fmt.Errorf("unknown event type: %T", event)
	}
}
