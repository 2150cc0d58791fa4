package domain

import (
	"strings"
	"time"
)

// FoodType classifies an item for display and export
type FoodType string

const (
	FoodTypeDairy      FoodType = "Lacteos"
	FoodTypeLegume     FoodType = "Legumbres"
	FoodTypeSweets     FoodType = "Dulces"
	FoodTypeCondiments FoodType = "Condimentos"
	FoodTypeFruit      FoodType = "Frutas"
	FoodTypeVegetable  FoodType = "Vegetales"
	FoodTypeMeat       FoodType = "Carnes"
	FoodTypeSeafood    FoodType = "Mariscos"
	FoodTypeGrains     FoodType = "Granos"
	FoodTypeBeverage   FoodType = "Bebidas"
	FoodTypeSnacks     FoodType = "Snacks"
	FoodTypeOther      FoodType = "Otros"
)

var foodTypes = []FoodType{
	FoodTypeDairy, FoodTypeLegume, FoodTypeSweets, FoodTypeCondiments,
	FoodTypeFruit, FoodTypeVegetable, FoodTypeMeat, FoodTypeSeafood,
	FoodTypeGrains, FoodTypeBeverage, FoodTypeSnacks, FoodTypeOther,
}

// FoodTypes returns every supported food type in display order
func FoodTypes() []FoodType {
	return append([]FoodType(nil), foodTypes...)
}

// ParseFoodType validates a food type received from a client
func ParseFoodType(value string) (FoodType, error) {
	for _, ft := range foodTypes {
		if string(ft) == value {
			return ft, nil
		}
	}
	return "", ErrInvalidFoodType
}

// UnitOfMeasure is the unit the quantity of an item is counted in
type UnitOfMeasure string

const (
	UnitItem UnitOfMeasure = "Item(s)"
	UnitKg   UnitOfMeasure = "kg"
	UnitG    UnitOfMeasure = "g"
	UnitLb   UnitOfMeasure = "lb"
	UnitOz   UnitOfMeasure = "oz"
	UnitL    UnitOfMeasure = "L"
	UnitMl   UnitOfMeasure = "ml"
	UnitCan  UnitOfMeasure = "Tarro(s)"
	UnitBox  UnitOfMeasure = "Caja(as)"
	UnitBag  UnitOfMeasure = "Bolsa(s)"
)

var units = []UnitOfMeasure{
	UnitItem, UnitKg, UnitG, UnitLb, UnitOz, UnitL, UnitMl, UnitCan, UnitBox, UnitBag,
}

// Units returns every supported unit in display order
func Units() []UnitOfMeasure {
	return append([]UnitOfMeasure(nil), units...)
}

// ParseUnit validates a unit received from a client
func ParseUnit(value string) (UnitOfMeasure, error) {
	for _, u := range units {
		if string(u) == value {
			return u, nil
		}
	}
	return "", ErrInvalidUnit
}

// InventoryItem is a tracked food item stored in exactly one location
type InventoryItem struct {
	ID             int64
	Name           string
	FoodType       FoodType
	Brand          string
	ExpirationDate *time.Time
	DateAdded      time.Time
	Quantity       int
	Unit           UnitOfMeasure
	LocationID     int64
}

// ItemDetails holds the mutable metadata of an item
type ItemDetails struct {
	Name           string
	FoodType       FoodType
	Brand          string
	ExpirationDate *time.Time
	Unit           UnitOfMeasure
	LocationID     int64
}

// NewInventoryItem creates an item added on the given day. The id is assigned by the store.
func NewInventoryItem(details ItemDetails, quantity int, addedOn time.Time) (*InventoryItem, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	item := &InventoryItem{
		DateAdded: StartOfDay(addedOn),
		Quantity:  quantity,
	}
	if err := item.ApplyDetails(details); err != nil {
		return nil, err
	}
	return item, nil
}

// ApplyDetails replaces all mutable metadata. Quantity is never touched here.
func (i *InventoryItem) ApplyDetails(details ItemDetails) error {
	name := strings.TrimSpace(details.Name)
	if name == "" {
		return ErrInvalidName
	}
	i.Name = name
	i.FoodType = details.FoodType
	i.Brand = strings.TrimSpace(details.Brand)
	i.ExpirationDate = details.ExpirationDate
	i.Unit = details.Unit
	i.LocationID = details.LocationID
	return nil
}

// AdjustTo sets the quantity and reports which movement the change represents.
// A zero magnitude means nothing changed.
func (i *InventoryItem) AdjustTo(newQuantity int) (MovementType, int, error) {
	if newQuantity < 0 {
		return "", 0, ErrNegativeQuantity
	}

	delta := newQuantity - i.Quantity
	i.Quantity = newQuantity

	switch {
	case delta > 0:
		return MovementAdded, delta, nil
	case delta < 0:
		return MovementUsed, -delta, nil
	default:
		return "", 0, nil
	}
}

// IsOutOfStock reports whether the item has nothing left
func (i *InventoryItem) IsOutOfStock() bool {
	return i.Quantity == 0
}

// IsExpired reports whether the expiration day is strictly before the reference day
func (i *InventoryItem) IsExpired(reference time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}
	return DaysUntil(reference, *i.ExpirationDate) < 0
}

// ExpirationStatus classifies how close the item is to expiring
func (i *InventoryItem) ExpirationStatus(reference time.Time) ExpirationStatus {
	if i.ExpirationDate == nil {
		return ExpirationNone
	}
	return ClassifyExpiration(DaysUntil(reference, *i.ExpirationDate))
}

// Clone returns a copy that does not share the expiration pointer
func (i *InventoryItem) Clone() *InventoryItem {
	c := *i
	if i.ExpirationDate != nil {
		exp := *i.ExpirationDate
		c.ExpirationDate = &exp
	}
	return &c
}

// Domain errors
var (
	ErrItemNotFound        = &DomainError{Message: "item not found"}
	ErrLocationNotFound    = &DomainError{Message: "location not found"}
	ErrLocationInUse       = &DomainError{Message: "location is still referenced by items"}
	ErrNegativeQuantity    = &DomainError{Message: "quantity cannot be negative"}
	ErrInvalidName         = &DomainError{Message: "name is required"}
	ErrInvalidFoodType     = &DomainError{Message: "invalid food type"}
	ErrInvalidUnit         = &DomainError{Message: "invalid unit of measure"}
	ErrInvalidMovementType = &DomainError{Message: "invalid movement type"}
)

// DomainError represents a domain-level error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
