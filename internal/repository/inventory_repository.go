package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/commands"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LocationDeletePolicy decides what happens to items whose location is deleted
type LocationDeletePolicy string

const (
	// DeletePolicyBlock refuses to delete a location that items still reference
	DeletePolicyBlock LocationDeletePolicy = "block"
	// DeletePolicyReassign moves referencing items to the fallback location
	DeletePolicyReassign LocationDeletePolicy = "reassign"
)

// ParseLocationDeletePolicy validates a configured policy name
func ParseLocationDeletePolicy(value string) (LocationDeletePolicy, error) {
	switch LocationDeletePolicy(value) {
	case DeletePolicyBlock, DeletePolicyReassign:
		return LocationDeletePolicy(value), nil
	default:
		return "", fmt.Errorf("unknown location delete policy %q", value)
	}
}

// StoreOptions configures InventoryStore behavior
type StoreOptions struct {
	// Strict reports missing ids, negative quantities and unknown locations
	// as errors. When false those operations are silent no-ops returning (nil, nil).
	Strict               bool
	LocationDeletePolicy LocationDeletePolicy
	Clock                func() time.Time
}

// MutationResult describes the outcome of a quantity-changing operation
type MutationResult struct {
	// Item is a snapshot after the change, or just before removal for deletions
	Item *domain.InventoryItem
	// Movement is nil when the quantity did not change
	Movement *domain.Movement
}

// LocationDeletion describes the outcome of DeleteLocation
type LocationDeletion struct {
	Location      domain.Location
	Fallback      *domain.Location
	ReassignedIDs []int64
}

// InventoryStore owns the tracked items and keeps the movement ledger
// consistent with every quantity change.
type InventoryStore struct {
	mu        sync.RWMutex
	nextID    int64
	items     map[int64]*domain.InventoryItem
	ledger    MovementLedger
	locations LocationRegistry
	opts      StoreOptions
	logger    *zap.Logger
}

// NewInventoryStore creates an empty store over the given ledger and registry
func NewInventoryStore(ledger MovementLedger, locations LocationRegistry, opts StoreOptions, logger *zap.Logger) *InventoryStore {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.LocationDeletePolicy == "" {
		opts.LocationDeletePolicy = DeletePolicyBlock
	}
	return &InventoryStore{
		items:     make(map[int64]*domain.InventoryItem),
		ledger:    ledger,
		locations: locations,
		opts:      opts,
		logger:    logger,
	}
}

// Strict reports whether invalid operations surface errors
func (s *InventoryStore) Strict() bool {
	return s.opts.Strict
}

// Now returns the store clock reading
func (s *InventoryStore) Now() time.Time {
	return s.opts.Clock()
}

// reject turns a tolerated condition into an error in strict mode or a no-op otherwise
func (s *InventoryStore) reject(operation string, err error, fields ...zap.Field) error {
	if s.opts.Strict {
		return err
	}
	s.logger.Debug("Ignoring invalid operation",
		append(fields, zap.String("operation", operation), zap.Error(err))...)
	return nil
}

// AddItem registers a new item and records an ADDED movement for its quantity
func (s *InventoryStore) AddItem(ctx context.Context, cmd commands.AddItemCommand) (*MutationResult, error) {
	now := s.opts.Clock()
	item, err := domain.NewInventoryItem(cmd.Details(), cmd.Quantity, now)
	if err != nil {
		if errors.Is(err, domain.ErrNegativeQuantity) {
			return nil, s.reject("add_item", err, zap.Int("quantity", cmd.Quantity))
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.locations.Get(ctx, cmd.LocationID); err != nil {
		return nil, s.reject("add_item", err, zap.Int64("location_id", cmd.LocationID))
	}

	s.nextID++
	item.ID = s.nextID
	s.items[item.ID] = item

	movement := s.ledger.Append(ctx, domain.NewMovement(item, domain.MovementAdded, item.Quantity, now))

	return &MutationResult{Item: item.Clone(), Movement: &movement}, nil
}

// UpdateItem replaces the metadata of an item. It never changes the quantity
// and never records a movement.
func (s *InventoryStore) UpdateItem(ctx context.Context, cmd commands.UpdateItemCommand) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[cmd.ID]
	if !exists {
		return nil, s.reject("update_item", domain.ErrItemNotFound, zap.Int64("item_id", cmd.ID))
	}
	if _, err := s.locations.Get(ctx, cmd.LocationID); err != nil {
		return nil, s.reject("update_item", err, zap.Int64("location_id", cmd.LocationID))
	}

	updated := item.Clone()
	if err := updated.ApplyDetails(cmd.Details()); err != nil {
		return nil, err
	}
	s.items[cmd.ID] = updated

	return updated.Clone(), nil
}

// AdjustQuantity sets the absolute quantity of an item. An increase records
// ADDED, a decrease records USED, no change records nothing.
func (s *InventoryStore) AdjustQuantity(ctx context.Context, cmd commands.AdjustQuantityCommand) (*MutationResult, error) {
	if cmd.Quantity < 0 {
		return nil, s.reject("adjust_quantity", domain.ErrNegativeQuantity, zap.Int("quantity", cmd.Quantity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[cmd.ID]
	if !exists {
		return nil, s.reject("adjust_quantity", domain.ErrItemNotFound, zap.Int64("item_id", cmd.ID))
	}

	movementType, magnitude, err := item.AdjustTo(cmd.Quantity)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{Item: item.Clone()}
	if magnitude > 0 {
		movement := s.ledger.Append(ctx, domain.NewMovement(item, movementType, magnitude, s.opts.Clock()))
		result.Movement = &movement
	}
	return result, nil
}

// DeleteItem records a DISCARDED movement for the remaining quantity, even
// zero, then removes the item.
func (s *InventoryStore) DeleteItem(ctx context.Context, cmd commands.DeleteItemCommand) (*MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[cmd.ID]
	if !exists {
		return nil, s.reject("delete_item", domain.ErrItemNotFound, zap.Int64("item_id", cmd.ID))
	}

	movement := s.ledger.Append(ctx, domain.NewMovement(item, domain.MovementDiscarded, item.Quantity, s.opts.Clock()))
	delete(s.items, cmd.ID)

	return &MutationResult{Item: item.Clone(), Movement: &movement}, nil
}

// GetItem returns a snapshot of one item
func (s *InventoryStore) GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, domain.ErrItemNotFound
	}
	return item.Clone(), nil
}

// ListItems returns a snapshot of all items ordered by name (Spanish collation)
func (s *InventoryStore) ListItems(ctx context.Context) []domain.InventoryItem {
	s.mu.RLock()
	items := make([]domain.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, *item.Clone())
	}
	s.mu.RUnlock()

	collator := collate.New(language.Spanish)
	sort.Slice(items, func(i, j int) bool {
		if c := collator.CompareString(items[i].Name, items[j].Name); c != 0 {
			return c < 0
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// ListItemNames returns the names of all items in display order
func (s *InventoryStore) ListItemNames(ctx context.Context) []string {
	items := s.ListItems(ctx)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

// DeleteLocation removes a location applying the configured orphan policy
func (s *InventoryStore) DeleteLocation(ctx context.Context, cmd commands.DeleteLocationCommand) (*LocationDeletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	location, err := s.locations.Get(ctx, cmd.ID)
	if err != nil {
		return nil, s.reject("delete_location", err, zap.Int64("location_id", cmd.ID))
	}

	var referencing []*domain.InventoryItem
	for _, item := range s.items {
		if item.LocationID == cmd.ID {
			referencing = append(referencing, item)
		}
	}

	deletion := &LocationDeletion{Location: *location}

	if len(referencing) > 0 {
		if s.opts.LocationDeletePolicy != DeletePolicyReassign {
			return nil, domain.ErrLocationInUse
		}

		fallback := s.locations.Fallback(ctx)
		if fallback.ID == cmd.ID {
			return nil, domain.ErrLocationInUse
		}
		for _, item := range referencing {
			item.LocationID = fallback.ID
			deletion.ReassignedIDs = append(deletion.ReassignedIDs, item.ID)
		}
		sort.Slice(deletion.ReassignedIDs, func(i, j int) bool {
			return deletion.ReassignedIDs[i] < deletion.ReassignedIDs[j]
		})
		deletion.Fallback = fallback

		s.logger.Info("Items reassigned to fallback location",
			zap.Int64("location_id", cmd.ID),
			zap.Int64("fallback_id", fallback.ID),
			zap.Int("items", len(referencing)),
		)
	}

	if err := s.locations.Remove(ctx, cmd.ID); err != nil {
		return nil, err
	}
	return deletion, nil
}

// CreateLocation adds a storage location
func (s *InventoryStore) CreateLocation(ctx context.Context, cmd commands.CreateLocationCommand) (*domain.Location, error) {
	return s.locations.Add(ctx, cmd.Name)
}

// RenameLocation changes the display name of a location
func (s *InventoryStore) RenameLocation(ctx context.Context, cmd commands.RenameLocationCommand) (*domain.Location, error) {
	location, err := s.locations.Rename(ctx, cmd.ID, cmd.Name)
	if errors.Is(err, domain.ErrLocationNotFound) {
		return nil, s.reject("rename_location", err, zap.Int64("location_id", cmd.ID))
	}
	return location, err
}

// GetLocation returns one location
func (s *InventoryStore) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return s.locations.Get(ctx, id)
}

// ListLocations returns every location in creation order
func (s *InventoryStore) ListLocations(ctx context.Context) []domain.Location {
	return s.locations.List(ctx)
}

// History returns movements most recent first, optionally for one item (itemID 0 means all)
func (s *InventoryStore) History(ctx context.Context, itemID int64) []domain.Movement {
	return s.ledger.History(ctx, itemID)
}

// Movements returns the whole ledger in insertion order
func (s *InventoryStore) Movements(ctx context.Context) []domain.Movement {
	return s.ledger.ListAll(ctx)
}
