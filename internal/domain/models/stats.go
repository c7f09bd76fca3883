package models

// Totals holds the running totals shown under the record list.
type Totals struct {
	TotalArea   float64 `json:"total_area"`
	TotalProfit float64 `json:"total_profit"`
}

// Aggregate sums area and profit over records. It keeps no state between calls.
func Aggregate(records []PlantingRecord) Totals {
	var totals Totals
	for _, rec := range records {
		totals.TotalArea += rec.AreaHectares
		totals.TotalProfit += rec.TotalProfit
	}
	return totals
}
