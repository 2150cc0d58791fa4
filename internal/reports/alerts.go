package reports

import (
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

// Alerts is the derived alert view of an inventory snapshot.
// An item can be in both sets; Total is not deduplicated.
type Alerts struct {
	OutOfStock []domain.InventoryItem
	Expired    []domain.InventoryItem
	Total      int
}

// EvaluateAlerts computes out-of-stock and expired items against the reference day
func EvaluateAlerts(items []domain.InventoryItem, reference time.Time) Alerts {
	alerts := Alerts{
		OutOfStock: []domain.InventoryItem{},
		Expired:    []domain.InventoryItem{},
	}

	for i := range items {
		if items[i].IsOutOfStock() {
			alerts.OutOfStock = append(alerts.OutOfStock, items[i])
		}
		if items[i].IsExpired(reference) {
			alerts.Expired = append(alerts.Expired, items[i])
		}
	}

	alerts.Total = len(alerts.OutOfStock) + len(alerts.Expired)
	return alerts
}
