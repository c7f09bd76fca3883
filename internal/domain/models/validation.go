package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for any incomplete or malformed form submission.
var ErrInvalidInput = errors.New("invalid planting input")

// ValidateForm checks the raw form and builds a PlantingRecord from it.
// Every failure maps to ErrInvalidInput; the caller learns nothing about
// which field was wrong. Zero and negative numbers are accepted.
func ValidateForm(raw RawFormInput) (PlantingRecord, error) {
	crop := strings.TrimSpace(raw.Crop)
	if crop == "" {
		return PlantingRecord{}, ErrInvalidInput
	}

	area, ok := parseFinite(raw.Area)
	if !ok {
		return PlantingRecord{}, ErrInvalidInput
	}

	dateText := strings.TrimSpace(raw.Date)
	date, ok := ParseBrazilianDate(dateText)
	if !ok {
		return PlantingRecord{}, ErrInvalidInput
	}

	seed, ok := parseFinite(raw.SeedPrice)
	if !ok {
		return PlantingRecord{}, ErrInvalidInput
	}
	fert, ok := parseFinite(raw.FertPrice)
	if !ok {
		return PlantingRecord{}, ErrInvalidInput
	}
	sale, ok := parseFinite(raw.SalePrice)
	if !ok {
		return PlantingRecord{}, ErrInvalidInput
	}

	// Finite inputs can still overflow once multiplied by the area.
	profit := ComputeProfit(seed, fert, sale, area)
	if !isFinite(profit) {
		return PlantingRecord{}, ErrInvalidInput
	}

	return PlantingRecord{
		Crop:         crop,
		AreaHectares: area,
		PlantingDate: date,
		DateText:     dateText,
		TotalProfit:  profit,
	}, nil
}

func parseFinite(value string) (float64, bool) {
	str := strings.TrimSpace(value)
	if str == "" || isHexLiteral(str) {
		return 0, false
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

// ParseFloat understands Go hex floats ("0x10" is 16); form input is decimal only.
func isHexLiteral(str string) bool {
	unsigned := strings.TrimLeft(str, "+-")
	return strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X")
}
