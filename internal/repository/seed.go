package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/commands"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/config"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

// ApplySeed fills an empty store with the seed content. A nil seed, or one
// without locations, creates the default locations. Seed items go through
// AddItem so each one gets its ADDED movement.
func (s *InventoryStore) ApplySeed(ctx context.Context, seed *config.Seed, loc *time.Location) error {
	names := domain.DefaultLocationNames
	if seed != nil && len(seed.Locations) > 0 {
		names = seed.Locations
	}

	byName := make(map[string]int64, len(names))
	for _, name := range names {
		location, err := s.locations.Add(ctx, name)
		if err != nil {
			return fmt.Errorf("seed location %q: %w", name, err)
		}
		byName[location.Name] = location.ID
	}

	if seed == nil {
		return nil
	}

	for _, entry := range seed.Items {
		cmd, err := seedCommand(entry, byName, loc)
		if err != nil {
			return fmt.Errorf("seed item %q: %w", entry.Name, err)
		}
		if _, err := s.AddItem(ctx, cmd); err != nil {
			return fmt.Errorf("seed item %q: %w", entry.Name, err)
		}
	}
	return nil
}

func seedCommand(entry config.SeedItem, locations map[string]int64, loc *time.Location) (commands.AddItemCommand, error) {
	foodType, err := domain.ParseFoodType(entry.FoodType)
	if err != nil {
		return commands.AddItemCommand{}, err
	}
	unit, err := domain.ParseUnit(entry.Unit)
	if err != nil {
		return commands.AddItemCommand{}, err
	}
	locationID, ok := locations[entry.Location]
	if !ok {
		return commands.AddItemCommand{}, domain.ErrLocationNotFound
	}

	cmd := commands.AddItemCommand{
		Name:       entry.Name,
		FoodType:   foodType,
		Brand:      entry.Brand,
		Quantity:   entry.Quantity,
		Unit:       unit,
		LocationID: locationID,
	}
	if entry.ExpirationDate != "" {
		exp, err := time.ParseInLocation(time.DateOnly, entry.ExpirationDate, loc)
		if err != nil {
			return commands.AddItemCommand{}, fmt.Errorf("invalid expiration date: %w", err)
		}
		cmd.ExpirationDate = &exp
	}
	return cmd, nil
}
