package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type unknownEvent struct{}

func (unknownEvent) EventType() string    { return "Unknown" }
func (unknownEvent) PartitionKey() string { return "" }

func testKafkaConfig() *config.Config {
	return &config.Config{
		KafkaTopicItems:     "household.items",
		KafkaTopicMovements: "household.movements",
		KafkaTopicLocations: "household.locations",
	}
}

func TestKafkaEventPublisher_Publish_MovementRecordedEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var payload map[string]interface{}
		if err := json.Unmarshal(val, &payload); err != nil {
			return err
		}
		assert.Equal(t, "Usado", payload["type"])
		assert.Equal(t, "Leche", payload["item_name"])
		assert.Equal(t, float64(2), payload["quantity_change"])
		return nil
	})

	publisher := &KafkaEventPublisher{producer: producer, logger: zap.NewNop(), config: testKafkaConfig()}
	event := NewMovementRecordedEvent(domain.Movement{
		ID:             7,
		ItemID:         3,
		ItemName:       "Leche",
		Type:           domain.MovementUsed,
		QuantityChange: 2,
		Timestamp:      time.Now(),
	})

	err := publisher.Publish(context.Background(), event)

	assert.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaEventPublisher_Publish_RetriesThenFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	for i := 0; i < publishAttempts; i++ {
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}

	publisher := &KafkaEventPublisher{producer: producer, logger: zap.NewNop(), config: testKafkaConfig()}

	err := publisher.Publish(context.Background(), ItemAddedEvent{ItemID: 1, Name: "Pan"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	require.NoError(t, producer.Close())
}

func TestKafkaEventPublisher_Publish_RecoversOnRetry(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndSucceed()

	publisher := &KafkaEventPublisher{producer: producer, logger: zap.NewNop(), config: testKafkaConfig()}

	err := publisher.Publish(context.Background(), LocationCreatedEvent{LocationID: 1, Name: "Despensa"})

	assert.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestKafkaEventPublisher_Publish_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher := &KafkaEventPublisher{producer: producer, logger: zap.NewNop(), config: testKafkaConfig()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.Publish(ctx, ItemDeletedEvent{ItemID: 1})

	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, producer.Close())
}

func TestKafkaEventPublisher_GetTopicForEvent_AllTypes(t *testing.T) {
	publisher := &KafkaEventPublisher{logger: zap.NewNop(), config: testKafkaConfig()}

	testCases := []struct {
		name        string
		event       Event
		expected    string
		expectError bool
	}{
		{"ItemAdded", ItemAddedEvent{}, "household.items", false},
		{"ItemUpdated", ItemUpdatedEvent{}, "household.items", false},
		{"ItemDeleted", ItemDeletedEvent{}, "household.items", false},
		{"QuantityAdjusted", QuantityAdjustedEvent{}, "household.items", false},
		{"MovementRecorded", MovementRecordedEvent{}, "household.movements", false},
		{"LocationCreated", LocationCreatedEvent{}, "household.locations", false},
		{"LocationRenamed", LocationRenamedEvent{}, "household.locations", false},
		{"LocationDeleted", LocationDeletedEvent{}, "household.locations", false},
		{"Unknown", unknownEvent{}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topic, err := publisher.getTopicForEvent(tc.event)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, topic)
			}
		})
	}
}

func TestEvent_PartitionKeys(t *testing.T) {
	assert.Equal(t, "item-4", QuantityAdjustedEvent{ItemID: 4}.PartitionKey())
	assert.Equal(t, "item-4", MovementRecordedEvent{ItemID: 4}.PartitionKey())
	assert.Equal(t, "location-2", LocationDeletedEvent{LocationID: 2}.PartitionKey())
}

func TestInMemoryEventPublisher_Publish(t *testing.T) {
	publisher := NewInMemoryEventPublisher(zap.NewNop())

	err := publisher.Publish(context.Background(), ItemAddedEvent{ItemID: 1, Name: "Arroz", OccurredAt: time.Now()})

	assert.NoError(t, err)
	require.Len(t, publisher.Events(), 1)
	assert.Equal(t, "ItemAdded", publisher.Events()[0].EventType())
}

func TestNewEventPublisher_DisabledUsesInMemory(t *testing.T) {
	publisher := NewEventPublisher(&config.Config{KafkaEnabled: false}, zap.NewNop())

	_, ok := publisher.(*InMemoryEventPublisher)
	assert.True(t, ok)
}
