package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

// MovementLedger is the append-only log of quantity changes
type MovementLedger interface {
	// Append assigns an id and records the movement. It always succeeds.
	Append(ctx context.Context, movement domain.Movement) domain.Movement
	// ListAll returns every movement in insertion order
	ListAll(ctx context.Context) []domain.Movement
	// History returns movements most recent first. itemID 0 means all items.
	History(ctx context.Context, itemID int64) []domain.Movement
}

// InMemoryMovementLedger keeps movements in process memory
type InMemoryMovementLedger struct {
	mu      sync.RWMutex
	nextID  int64
	entries []domain.Movement
}

func NewMovementLedger() *InMemoryMovementLedger {
	return &InMemoryMovementLedger{}
}

func (l *InMemoryMovementLedger) Append(ctx context.Context, movement domain.Movement) domain.Movement {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	movement.ID = l.nextID
	l.entries = append(l.entries, movement)
	return movement
}

func (l *InMemoryMovementLedger) ListAll(ctx context.Context) []domain.Movement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]domain.Movement(nil), l.entries...)
}

func (l *InMemoryMovementLedger) History(ctx context.Context, itemID int64) []domain.Movement {
	l.mu.RLock()
	history := make([]domain.Movement, 0, len(l.entries))
	for _, m := range l.entries {
		if itemID == 0 || m.ItemID == itemID {
			history = append(history, m)
		}
	}
	l.mu.RUnlock()

	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Timestamp.Equal(history[j].Timestamp) {
			return history[i].ID > history[j].ID
		}
		return history[i].Timestamp.After(history[j].Timestamp)
	})
	return history
}
