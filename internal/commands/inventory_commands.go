package commands

import (
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

// AddItemCommand represents a command to register a new item
type AddItemCommand struct {
	Name           string
	FoodType       domain.FoodType
	Brand          string
	ExpirationDate *time.Time
	Quantity       int
	Unit           domain.UnitOfMeasure
	LocationID     int64
}

// Details returns the metadata part of the command
func (c AddItemCommand) Details() domain.ItemDetails {
	return domain.ItemDetails{
		Name:           c.Name,
		FoodType:       c.FoodType,
		Brand:          c.Brand,
		ExpirationDate: c.ExpirationDate,
		Unit:           c.Unit,
		LocationID:     c.LocationID,
	}
}

// UpdateItemCommand represents a command to replace the metadata of an item
type UpdateItemCommand struct {
	ID             int64
	Name           string
	FoodType       domain.FoodType
	Brand          string
	ExpirationDate *time.Time
	Unit           domain.UnitOfMeasure
	LocationID     int64
}

// Details returns the metadata part of the command
func (c UpdateItemCommand) Details() domain.ItemDetails {
	return domain.ItemDetails{
		Name:           c.Name,
		FoodType:       c.FoodType,
		Brand:          c.Brand,
		ExpirationDate: c.ExpirationDate,
		Unit:           c.Unit,
		LocationID:     c.LocationID,
	}
}

// AdjustQuantityCommand sets the absolute quantity of an item
type AdjustQuantityCommand struct {
	ID       int64
	Quantity int
}

// DeleteItemCommand represents a command to discard an item
type DeleteItemCommand struct {
	ID int64
}

// CreateLocationCommand represents a command to add a storage location
type CreateLocationCommand struct {
	Name string
}

// RenameLocationCommand represents a command to rename a storage location
type RenameLocationCommand struct {
	ID   int64
	Name string
}

// DeleteLocationCommand represents a command to remove a storage location
type DeleteLocationCommand struct {
	ID int64
}
