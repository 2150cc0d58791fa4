package reports

import (
	"fmt"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
)

// ConsumptionWindowDays is the length of the consumption report
const ConsumptionWindowDays = 7

// DailyConsumption is one bar of the consumption report
type DailyConsumption struct {
	Date  time.Time
	Label string
	Total int
}

var shortMonthsES = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// ShortDateLabel formats a day as es-ES "day month", e.g. "17 oct"
func ShortDateLabel(day time.Time) string {
	return fmt.Sprintf("%d %s", day.Day(), shortMonthsES[day.Month()-1])
}

// AggregateConsumption sums USED and DISCARDED quantities per calendar day for
// the seven days ending on the reference day, oldest first. Timestamps are
// bucketed in the reference location.
func AggregateConsumption(movements []domain.Movement, reference time.Time) []DailyConsumption {
	today := domain.StartOfDay(reference)

	days := make([]DailyConsumption, ConsumptionWindowDays)
	index := make(map[string]int, ConsumptionWindowDays)
	for i := range days {
		day := today.AddDate(0, 0, i-(ConsumptionWindowDays-1))
		days[i] = DailyConsumption{Date: day, Label: ShortDateLabel(day)}
		index[day.Format(time.DateOnly)] = i
	}

	for _, m := range movements {
		if !m.Type.IsConsumption() {
			continue
		}
		day := domain.StartOfDay(m.Timestamp.In(reference.Location()))
		if i, ok := index[day.Format(time.DateOnly)]; ok {
			days[i].Total += m.QuantityChange
		}
	}

	return days
}
