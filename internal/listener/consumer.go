package listener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const eventTypeHeader = "event-type"

// Processor applies one inventory event
type Processor interface {
	Process(ctx context.Context, eventType string, payload []byte) error
}

// Consumer reads the inventory topics through a Kafka consumer group
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	handler       *consumerGroupHandler
	logger        *zap.Logger
	topics        []string
}

// NewConsumer creates a consumer group subscribed to the item, movement and location topics
func NewConsumer(cfg *config.Config, processor Processor, logger *zap.Logger) (*Consumer, error) {
	logger.Info("🔌 Creating Kafka consumer",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = cfg.KafkaClientID + "-listener"
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Version = sarama.V2_8_0_0
	saramaConfig.Net.DialTimeout = 10 * time.Second
	saramaConfig.Net.ReadTimeout = 10 * time.Second
	saramaConfig.Net.WriteTimeout = 10 * time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.KafkaBrokers, cfg.KafkaGroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	topics := []string{cfg.KafkaTopicItems, cfg.KafkaTopicMovements, cfg.KafkaTopicLocations}
	return newConsumer(consumerGroup, topics, newConsumerGroupHandler(processor, cfg.ListenerRetries,
		time.Duration(cfg.ListenerBackoffMs)*time.Millisecond, logger), logger), nil
}

func newConsumer(group sarama.ConsumerGroup, topics []string, handler *consumerGroupHandler, logger *zap.Logger) *Consumer {
	return &Consumer{
		consumerGroup: group,
		handler:       handler,
		logger:        logger,
		topics:        topics,
	}
}

// Start consumes until ctx is cancelled. Consume returns on every rebalance,
// so it is called in a loop.
func (c *Consumer) Start(ctx context.Context) error {
	go func() {
		for err := range c.consumerGroup.Errors() {
			c.logger.Error("Consumer error", zap.Error(err))
		}
	}()

	c.logger.Info("Kafka consumer started", zap.Strings("topics", c.topics))

	for {
		if err := c.consumerGroup.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("consume: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	return c.consumerGroup.Close()
}

type consumerGroupHandler struct {
	processor  Processor
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

func newConsumerGroupHandler(processor Processor, maxRetries int, retryDelay time.Duration, logger *zap.Logger) *consumerGroupHandler {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &consumerGroupHandler{
		processor:  processor,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes messages in order. A message is marked even when it
// fails for good, otherwise the partition would stall on it.
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}

			eventType := extractEventType(message.Headers)
			if eventType == "" {
				h.logger.Warn("Message without event type, skipping",
					zap.String("topic", message.Topic),
					zap.Int32("partition", message.Partition),
					zap.Int64("offset", message.Offset),
				)
				session.MarkMessage(message, "")
				continue
			}

			if err := h.processWithRetry(session.Context(), eventType, message.Value); err != nil {
				if session.Context().Err() != nil {
					return nil
				}
				h.logger.Error("Failed to process event, skipping",
					zap.String("event-type", eventType),
					zap.String("topic", message.Topic),
					zap.Int64("offset", message.Offset),
					zap.Error(err),
				)
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *consumerGroupHandler) processWithRetry(ctx context.Context, eventType string, payload []byte) error {
	var lastErr error
	for attempt := 0; attempt <= h.maxRetries; attempt++ {
		if attempt > 0 {
			delay := h.retryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := h.processor.Process(ctx, eventType, payload)
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return err
		}
		lastErr = err
		h.logger.Warn("Event processing failed, will retry",
			zap.String("event-type", eventType),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}
	return fmt.Errorf("failed after %d attempts: %w", h.maxRetries+1, lastErr)
}

func extractEventType(headers []*sarama.RecordHeader) string {
	for _, header := range headers {
		if header != nil && string(header.Key) == eventTypeHeader {
			return string(header.Value)
		}
	}
	return ""
}
