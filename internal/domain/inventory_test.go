package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestItem(t *testing.T, quantity int) *InventoryItem {
	t.Helper()
	item, err := NewInventoryItem(ItemDetails{
		Name:       "Leche",
		FoodType:   FoodTypeDairy,
		Unit:       UnitL,
		LocationID: 1,
	}, quantity, time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return item
}

func TestNewInventoryItem(t *testing.T) {
	item := newTestItem(t, 2)

	assert.Equal(t, "Leche", item.Name)
	assert.Equal(t, FoodTypeDairy, item.FoodType)
	assert.Equal(t, UnitL, item.Unit)
	assert.Equal(t, int64(1), item.LocationID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, date(2024, 3, 10), item.DateAdded)
}

func TestNewInventoryItem_Error_EmptyName(t *testing.T) {
	item, err := NewInventoryItem(ItemDetails{Name: "   "}, 1, time.Now())

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestNewInventoryItem_Error_NegativeQuantity(t *testing.T) {
	item, err := NewInventoryItem(ItemDetails{Name: "Arroz"}, -1, time.Now())

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestApplyDetails_KeepsQuantity(t *testing.T) {
	item := newTestItem(t, 4)
	exp := date(2024, 4, 1)

	err := item.ApplyDetails(ItemDetails{
		Name:           " Leche deslactosada ",
		FoodType:       FoodTypeBeverage,
		Brand:          "Pascual",
		ExpirationDate: &exp,
		Unit:           UnitMl,
		LocationID:     2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Leche deslactosada", item.Name)
	assert.Equal(t, "Pascual", item.Brand)
	assert.Equal(t, UnitMl, item.Unit)
	assert.Equal(t, int64(2), item.LocationID)
	assert.Equal(t, 4, item.Quantity)
}

func TestAdjustTo_Increase(t *testing.T) {
	item := newTestItem(t, 2)

	movementType, magnitude, err := item.AdjustTo(5)

	assert.NoError(t, err)
	assert.Equal(t, MovementAdded, movementType)
	assert.Equal(t, 3, magnitude)
	assert.Equal(t, 5, item.Quantity)
}

func TestAdjustTo_Decrease(t *testing.T) {
	item := newTestItem(t, 5)

	movementType, magnitude, err := item.AdjustTo(0)

	assert.NoError(t, err)
	assert.Equal(t, MovementUsed, movementType)
	assert.Equal(t, 5, magnitude)
	assert.True(t, item.IsOutOfStock())
}

func TestAdjustTo_NoChange(t *testing.T) {
	item := newTestItem(t, 3)

	_, magnitude, err := item.AdjustTo(3)

	assert.NoError(t, err)
	assert.Zero(t, magnitude)
	assert.Equal(t, 3, item.Quantity)
}

func TestAdjustTo_Error_NegativeResult(t *testing.T) {
	item := newTestItem(t, 3)

	_, _, err := item.AdjustTo(-1)

	assert.ErrorIs(t, err, ErrNegativeQuantity)
	assert.Equal(t, 3, item.Quantity, "quantity should remain unchanged")
}

func TestIsExpired(t *testing.T) {
	item := newTestItem(t, 1)
	reference := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.False(t, item.IsExpired(reference), "no expiration date")

	yesterday := date(2024, 3, 9)
	item.ExpirationDate = &yesterday
	assert.True(t, item.IsExpired(reference))

	today := date(2024, 3, 10)
	item.ExpirationDate = &today
	assert.False(t, item.IsExpired(reference), "expiring today is not expired")
}

func TestExpirationStatus(t *testing.T) {
	reference := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		offset   int
		expected ExpirationStatus
	}{
		{"Expired", -1, ExpirationExpired},
		{"Today", 0, ExpirationToday},
		{"Urgent", 3, ExpirationUrgent},
		{"Soon", 7, ExpirationSoon},
		{"OK", 8, ExpirationOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := newTestItem(t, 1)
			exp := date(2024, 3, 10).AddDate(0, 0, tc.offset)
			item.ExpirationDate = &exp
			assert.Equal(t, tc.expected, item.ExpirationStatus(reference))
		})
	}

	item := newTestItem(t, 1)
	assert.Equal(t, ExpirationNone, item.ExpirationStatus(reference))
}

func TestDaysUntil_IgnoresTimeOfDay(t *testing.T) {
	reference := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	target := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(reference, target))
}

func TestClone_DoesNotShareExpiration(t *testing.T) {
	item := newTestItem(t, 1)
	exp := date(2024, 3, 20)
	item.ExpirationDate = &exp

	clone := item.Clone()
	*clone.ExpirationDate = date(2025, 1, 1)

	assert.Equal(t, date(2024, 3, 20), *item.ExpirationDate)
}

func TestParseFoodType(t *testing.T) {
	ft, err := ParseFoodType("Frutas")
	assert.NoError(t, err)
	assert.Equal(t, FoodTypeFruit, ft)

	_, err = ParseFoodType("Fruit")
	assert.ErrorIs(t, err, ErrInvalidFoodType)
	assert.Len(t, FoodTypes(), 12)
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("Caja(as)")
	assert.NoError(t, err)
	assert.Equal(t, UnitBox, u)

	_, err = ParseUnit("box")
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.Len(t, Units(), 10)
}

func TestMovementType_IsConsumption(t *testing.T) {
	assert.False(t, MovementAdded.IsConsumption())
	assert.True(t, MovementUsed.IsConsumption())
	assert.True(t, MovementDiscarded.IsConsumption())

	mt, err := ParseMovementType("Descartado")
	assert.NoError(t, err)
	assert.Equal(t, MovementDiscarded, mt)

	_, err = ParseMovementType("Robado")
	assert.ErrorIs(t, err, ErrInvalidMovementType)
}

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation("  Despensa ")
	assert.NoError(t, err)
	assert.Equal(t, "Despensa", loc.Name)

	_, err = NewLocation("")
	assert.ErrorIs(t, err, ErrInvalidName)
}
