package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/events"
)

var (
	// ErrUnknownEventType is returned for event-type headers no decoder handles
	ErrUnknownEventType = errors.New("unknown event type")
	// ErrMalformedEvent is returned when the payload does not decode
	ErrMalformedEvent = errors.New("malformed event payload")
)

// eventFactories maps the event-type header to an empty event to decode into
var eventFactories = map[string]func() events.Event{
	"ItemAdded":        func() events.Event { return &events.ItemAddedEvent{} },
	"ItemUpdated":      func() events.Event { return &events.ItemUpdatedEvent{} },
	"ItemDeleted":      func() events.Event { return &events.ItemDeletedEvent{} },
	"QuantityAdjusted": func() events.Event { return &events.QuantityAdjustedEvent{} },
	"MovementRecorded": func() events.Event { return &events.MovementRecordedEvent{} },
	"LocationCreated":  func() events.Event { return &events.LocationCreatedEvent{} },
	"LocationRenamed":  func() events.Event { return &events.LocationRenamedEvent{} },
	"LocationDeleted":  func() events.Event { return &events.LocationDeletedEvent{} },
}

// Decode turns a message payload into the event named by eventType
func Decode(eventType string, payload []byte) (events.Event, error) {
	factory, ok := eventFactories[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}
	event := factory()
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return event, nil
}

// IsPermanent reports whether retrying the event can never succeed
func IsPermanent(err error) bool {
	return errors.Is(err, ErrUnknownEventType) || errors.Is(err, ErrMalformedEvent)
}

// Summary is a point-in-time view of the audit projection
type Summary struct {
	EventsByType       map[string]int              `json:"events_by_type"`
	TrackedItems       int                         `json:"tracked_items"`
	TotalUnits         int                         `json:"total_units"`
	Locations          int                         `json:"locations"`
	MovementTotals     map[domain.MovementType]int `json:"movement_totals"`
	DuplicateMovements int                         `json:"duplicate_movements"`
	LastEventAt        *time.Time                  `json:"last_event_at,omitempty"`
}

// Projection folds the published inventory events into running totals.
// Kafka delivers at least once, so movements are deduplicated by id.
type Projection struct {
	mu             sync.RWMutex
	quantities     map[int64]int
	locations      map[int64]string
	eventCounts    map[string]int
	movementTotals map[domain.MovementType]int
	seenMovements  map[int64]struct{}
	duplicates     int
	lastEventAt    time.Time
}

func NewProjection() *Projection {
	return &Projection{
		quantities:     make(map[int64]int),
		locations:      make(map[int64]string),
		eventCounts:    make(map[string]int),
		movementTotals: make(map[domain.MovementType]int),
		seenMovements:  make(map[int64]struct{}),
	}
}

// Process decodes and applies one event
func (p *Projection) Process(ctx context.Context, eventType string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	event, err := Decode(eventType, payload)
	if err != nil {
		return err
	}
	p.Apply(event)
	return nil
}

// Apply folds a decoded event into the projection
func (p *Projection) Apply(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.eventCounts[event.EventType()]++

	var occurredAt time.Time
	switch e := event.(type) {
	case *events.ItemAddedEvent:
		p.quantities[e.ItemID] = e.Quantity
		occurredAt = e.OccurredAt
	case *events.ItemUpdatedEvent:
		if _, ok := p.quantities[e.ItemID]; !ok {
			p.quantities[e.ItemID] = 0
		}
		occurredAt = e.OccurredAt
	case *events.ItemDeletedEvent:
		delete(p.quantities, e.ItemID)
		occurredAt = e.OccurredAt
	case *events.QuantityAdjustedEvent:
		p.quantities[e.ItemID] = e.NewQuantity
		occurredAt = e.OccurredAt
	case *events.MovementRecordedEvent:
		if _, seen := p.seenMovements[e.MovementID]; seen {
			p.duplicates++
			p.eventCounts[event.EventType()]--
			return
		}
		p.seenMovements[e.MovementID] = struct{}{}
		p.movementTotals[e.Type] += e.QuantityChange
		occurredAt = e.OccurredAt
	case *events.LocationCreatedEvent:
		p.locations[e.LocationID] = e.Name
		occurredAt = e.OccurredAt
	case *events.LocationRenamedEvent:
		p.locations[e.LocationID] = e.Name
		occurredAt = e.OccurredAt
	case *events.LocationDeletedEvent:
		delete(p.locations, e.LocationID)
		if e.FallbackLocationID != 0 {
			if _, ok := p.locations[e.FallbackLocationID]; !ok {
				p.locations[e.FallbackLocationID] = domain.FallbackLocationName
			}
		}
		occurredAt = e.OccurredAt
	}

	if occurredAt.After(p.lastEventAt) {
		p.lastEventAt = occurredAt
	}
}

// Summary returns a copy of the current totals
func (p *Projection) Summary() Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()

	summary := Summary{
		EventsByType:       make(map[string]int, len(p.eventCounts)),
		TrackedItems:       len(p.quantities),
		Locations:          len(p.locations),
		MovementTotals:     make(map[domain.MovementType]int, len(p.movementTotals)),
		DuplicateMovements: p.duplicates,
	}
	for eventType, count := range p.eventCounts {
		summary.EventsByType[eventType] = count
	}
	for movementType, total := range p.movementTotals {
		summary.MovementTotals[movementType] = total
	}
	for _, quantity := range p.quantities {
		summary.TotalUnits += quantity
	}
	if !p.lastEventAt.IsZero() {
		last := p.lastEventAt
		summary.LastEventAt = &last
	}
	return summary
}
