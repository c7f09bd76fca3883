package models

// CostPerHectare is the combined seed and fertilizer spend for one hectare.
func CostPerHectare(seedPricePerHa, fertPricePerHa float64) float64 {
	return seedPricePerHa + fertPricePerHa
}

// ProfitPerHectare is the sale price minus the per-hectare cost.
func ProfitPerHectare(seedPricePerHa, fertPricePerHa, salePricePerHa float64) float64 {
	return salePricePerHa - CostPerHectare(seedPricePerHa, fertPricePerHa)
}

// ComputeProfit returns the total profit for a planting. The value is not
// rounded and may be negative.
func ComputeProfit(seedPricePerHa, fertPricePerHa, salePricePerHa, areaHectares float64) float64 {
	return ProfitPerHectare(seedPricePerHa, fertPricePerHa, salePricePerHa) * areaHectares
}
