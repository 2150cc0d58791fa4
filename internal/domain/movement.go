package domain

import "time"

// MovementType is the cause of a quantity change
type MovementType string

// Tipos de movimiento
const (
	MovementAdded     MovementType = "Añadido"    // entrada
	MovementUsed      MovementType = "Usado"      // consumo o corrección a la baja
	MovementDiscarded MovementType = "Descartado" // eliminación del item
)

// ParseMovementType validates a movement type received from a client
func ParseMovementType(value string) (MovementType, error) {
	switch MovementType(value) {
	case MovementAdded, MovementUsed, MovementDiscarded:
		return MovementType(value), nil
	default:
		return "", ErrInvalidMovementType
	}
}

// IsConsumption reports whether the movement counts toward consumption totals
func (t MovementType) IsConsumption() bool {
	return t == MovementUsed || t == MovementDiscarded
}

// Movement is an immutable ledger entry. ItemName is captured when the
// movement happens so history survives renames and deletions.
type Movement struct {
	ID             int64
	ItemID         int64
	ItemName       string
	Type           MovementType
	QuantityChange int
	Timestamp      time.Time
}

// NewMovement records a change of magnitude quantity for the item at the given instant
func NewMovement(item *InventoryItem, movementType MovementType, quantity int, at time.Time) Movement {
	return Movement{
		ItemID:         item.ID,
		ItemName:       item.Name,
		Type:           movementType,
		QuantityChange: quantity,
		Timestamp:      at,
	}
}
