package models

// RawFormInput carries the six free-text fields of the planting form.
type RawFormInput struct {
	Crop      string `json:"crop" form:"crop"`
	Area      string `json:"area" form:"area"`
	Date      string `json:"date" form:"date"`
	SeedPrice string `json:"seed_price" form:"seed_price"`
	FertPrice string `json:"fert_price" form:"fert_price"`
	SalePrice string `json:"sale_price" form:"sale_price"`
}

// PlantingRecord is one validated planting entry. Prices are consumed when the
// record is built and only the resulting profit is kept.
type PlantingRecord struct {
	Crop         string       `json:"crop"`
	AreaHectares float64      `json:"area_hectares"`
	PlantingDate CalendarDate `json:"planting_date"`
	DateText     string       `json:"date_text"`
	TotalProfit  float64      `json:"total_profit"`
}
