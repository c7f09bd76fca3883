package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	require.Equal(t, Totals{}, Aggregate(nil))
	require.Equal(t, Totals{}, Aggregate([]PlantingRecord{}))
}

func TestAggregateSums(t *testing.T) {
	records := []PlantingRecord{
		{Crop: "Milho", AreaHectares: 2, TotalProfit: 300},
		{Crop: "Soja", AreaHectares: 1.5, TotalProfit: -120.25},
		{Crop: "Trigo", AreaHectares: 4, TotalProfit: 1000},
	}

	totals := Aggregate(records)
	require.InDelta(t, 7.5, totals.TotalArea, 1e-9)
	require.InDelta(t, 1179.75, totals.TotalProfit, 1e-9)
}
