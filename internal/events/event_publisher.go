package events

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"

	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Event is implemented by every household inventory event
type Event interface {
	EventType() string
	// PartitionKey keeps events of one aggregate ordered
	PartitionKey() string
}

// Item events

type ItemAddedEvent struct {
	ItemID     int64                `json:"item_id"`
	Name       string               `json:"name"`
	FoodType   domain.FoodType      `json:"food_type"`
	Quantity   int                  `json:"quantity"`
	Unit       domain.UnitOfMeasure `json:"unit"`
	LocationID int64                `json:"location_id"`
	OccurredAt time.Time            `json:"occurred_at"`
}

type ItemUpdatedEvent struct {
	ItemID         int64                `json:"item_id"`
	Name           string               `json:"name"`
	FoodType       domain.FoodType      `json:"food_type"`
	Brand          string               `json:"brand,omitempty"`
	ExpirationDate *time.Time           `json:"expiration_date,omitempty"`
	Unit           domain.UnitOfMeasure `json:"unit"`
	LocationID     int64                `json:"location_id"`
	OccurredAt     time.Time            `json:"occurred_at"`
}

type ItemDeletedEvent struct {
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type QuantityAdjustedEvent struct {
	ItemID      int64     `json:"item_id"`
	NewQuantity int       `json:"new_quantity"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Movement events

type MovementRecordedEvent struct {
	MovementID     int64               `json:"movement_id"`
	ItemID         int64               `json:"item_id"`
	ItemName       string              `json:"item_name"`
	Type           domain.MovementType `json:"type"`
	QuantityChange int                 `json:"quantity_change"`
	OccurredAt     time.Time           `json:"occurred_at"`
}

// Location events

type LocationCreatedEvent struct {
	LocationID int64     `json:"location_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LocationRenamedEvent struct {
	LocationID int64     `json:"location_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type LocationDeletedEvent struct {
	LocationID         int64     `json:"location_id"`
	Name               string    `json:"name"`
	FallbackLocationID int64     `json:"fallback_location_id,omitempty"`
	ReassignedItemIDs  []int64   `json:"reassigned_item_ids,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func (ItemAddedEvent) EventType() string        { return "ItemAdded" }
func (ItemUpdatedEvent) EventType() string      { return "ItemUpdated" }
func (ItemDeletedEvent) EventType() string      { return "ItemDeleted" }
func (QuantityAdjustedEvent) EventType() string { return "QuantityAdjusted" }
func (MovementRecordedEvent) EventType() string { return "MovementRecorded" }
func (LocationCreatedEvent) EventType() string  { return "LocationCreated" }
func (LocationRenamedEvent) EventType() string  { return "LocationRenamed" }
func (LocationDeletedEvent) EventType() string  { return "LocationDeleted" }

func (e ItemAddedEvent) PartitionKey() string        { return itemKey(e.ItemID) }
func (e ItemUpdatedEvent) PartitionKey() string      { return itemKey(e.ItemID) }
func (e ItemDeletedEvent) PartitionKey() string      { return itemKey(e.ItemID) }
func (e QuantityAdjustedEvent) PartitionKey() string { return itemKey(e.ItemID) }
func (e MovementRecordedEvent) PartitionKey() string { return itemKey(e.ItemID) }
func (e LocationCreatedEvent) PartitionKey() string  { return locationKey(e.LocationID) }
func (e LocationRenamedEvent) PartitionKey() string  { return locationKey(e.LocationID) }
func (e LocationDeletedEvent) PartitionKey() string  { return locationKey(e.LocationID) }

func itemKey(id int64) string     { return "item-" + strconv.FormatInt(id, 10) }
func locationKey(id int64) string { return "location-" + strconv.FormatInt(id, 10) }

// NewMovementRecordedEvent builds the event for a ledger entry
func NewMovementRecordedEvent(m domain.Movement) MovementRecordedEvent {
	return MovementRecordedEvent{
		MovementID:     m.ID,
		ItemID:         m.ItemID,
		ItemName:       m.ItemName,
		Type:           m.Type,
		QuantityChange: m.QuantityChange,
		OccurredAt:     m.Timestamp,
	}
}

// NewEventPublisher returns the Kafka publisher when enabled and reachable,
// and the in-memory publisher otherwise.
func NewEventPublisher(cfg *config.Config, logger *zap.Logger) EventPublisher {
	if !cfg.KafkaEnabled {
		logger.Info("Kafka disabled (KAFKA_ENABLED=false), using in-memory publisher")
		return NewInMemoryEventPublisher(logger)
	}

	publisher, err := NewKafkaEventPublisher(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
		return NewInMemoryEventPublisher(logger)
	}
	return publisher
}

// InMemoryEventPublisher keeps published events in memory
type InMemoryEventPublisher struct {
	mu     sync.Mutex
	logger *zap.Logger
	events []Event
}

func NewInMemoryEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		logger: logger,
		events: make([]Event, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()

	p.logger.Debug("Event published (in-memory)",
		zap.String("event-type", event.EventType()),
		zap.String("key", event.PartitionKey()),
	)
	return nil
}

// Events returns the events published so far
func (p *InMemoryEventPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}
