package export

import (
	"strconv"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

const notAvailable = "N/A"

// Headers are the column titles shared by every export format
var Headers = []string{"Nombre", "Tipo", "Marca", "Cantidad", "Unidad", "Ubicación", "Expiración", "Fecha de Adición"}

// Row is one exported item with every reference resolved to display text
type Row struct {
	Name       string
	FoodType   string
	Brand      string
	Quantity   int
	Unit       string
	Location   string
	Expiration string
	DateAdded  string
}

// BuildRows resolves locations by id and fills missing values with N/A
func BuildRows(items []domain.InventoryItem, locations []domain.Location) []Row {
	names := make(map[int64]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{
			Name:       item.Name,
			FoodType:   string(item.FoodType),
			Brand:      orNotAvailable(item.Brand),
			Quantity:   item.Quantity,
			Unit:       string(item.Unit),
			Location:   orNotAvailable(names[item.LocationID]),
			Expiration: notAvailable,
			DateAdded:  item.DateAdded.Format(time.DateOnly),
		}
		if item.ExpirationDate != nil {
			row.Expiration = item.ExpirationDate.Format(time.DateOnly)
		}
		rows = append(rows, row)
	}
	return rows
}

// Values returns the row as text in Headers order
func (r Row) Values() []string {
	return []string{
		r.Name, r.FoodType, r.Brand, strconv.Itoa(r.Quantity),
		r.Unit, r.Location, r.Expiration, r.DateAdded,
	}
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
