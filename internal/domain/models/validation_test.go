package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validInput() RawFormInput {
	return RawFormInput{
		Crop:      "Milho",
		Area:      "2",
		Date:      "23/04/2025",
		SeedPrice: "100",
		FertPrice: "50",
		SalePrice: "300",
	}
}

func TestValidateFormBuildsRecord(t *testing.T) {
	raw := validInput()
	raw.Crop = "  Milho  "
	raw.Date = " 23/04/2025 "

	record, err := ValidateForm(raw)
	require.NoError(t, err)
	require.Equal(t, "Milho", record.Crop)
	require.Equal(t, 2.0, record.AreaHectares)
	require.Equal(t, "23/04/2025", record.DateText)
	require.Equal(t, NewCalendarDate(2025, time.April, 23), record.PlantingDate)
	require.InDelta(t, 300.0, record.TotalProfit, 1e-9)
}

func TestValidateFormAcceptsNegativeAndZero(t *testing.T) {
	raw := validInput()
	raw.Area = "-1.5"
	raw.SalePrice = "0"

	record, err := ValidateForm(raw)
	require.NoError(t, err)
	require.InDelta(t, 225.0, record.TotalProfit, 1e-9)
}

func TestValidateFormRejects(t *testing.T) {
	cases := map[string]func(*RawFormInput){
		"empty crop":    func(r *RawFormInput) { r.Crop = "   " },
		"empty area":    func(r *RawFormInput) { r.Area = "" },
		"text area":     func(r *RawFormInput) { r.Area = "dois" },
		"nan area":      func(r *RawFormInput) { r.Area = "NaN" },
		"inf area":      func(r *RawFormInput) { r.Area = "Inf" },
		"bad date":      func(r *RawFormInput) { r.Date = "2025-04-23" },
		"invalid day":   func(r *RawFormInput) { r.Date = "31/02/2025" },
		"empty seed":    func(r *RawFormInput) { r.SeedPrice = "" },
		"text fert":     func(r *RawFormInput) { r.FertPrice = "abc" },
		"overflow sale": func(r *RawFormInput) { r.SalePrice = "1e400" },
		"missing all":   func(r *RawFormInput) { *r = RawFormInput{} },
		"hex area":      func(r *RawFormInput) { r.Area = "0x10" },
		"signed hex":    func(r *RawFormInput) { r.SeedPrice = "-0X1p4" },
		"profit inf": func(r *RawFormInput) {
			r.Area = "1e200"
			r.SalePrice = "1e200"
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			raw := validInput()
			mutate(&raw)
			_, err := ValidateForm(raw)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
