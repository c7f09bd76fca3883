package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBrazilianDate(t *testing.T) {
	date, ok := ParseBrazilianDate("23/04/2025")
	require.True(t, ok)
	require.Equal(t, 2025, date.Year())
	require.Equal(t, time.April, date.Month())
	require.Equal(t, 23, date.Day())
	require.Equal(t, "23/04/2025", date.String())
}

func TestParseBrazilianDateRejects(t *testing.T) {
	cases := []string{
		"",
		"2025-04-23",
		"23/04",
		"23/04/2025/1",
		"31/02/2025",
		"29/02/2025",
		"00/01/2025",
		"10/13/2025",
		"10/00/2025",
		"aa/04/2025",
		"23/04/20x5",
	}
	for _, in := range cases {
		_, ok := ParseBrazilianDate(in)
		require.Falsef(t, ok, "expected %q to be rejected", in)
	}
}

func TestParseBrazilianDateLeapDay(t *testing.T) {
	date, ok := ParseBrazilianDate("29/02/2024")
	require.True(t, ok)
	require.Equal(t, NewCalendarDate(2024, time.February, 29), date)
}

func TestParseBrazilianDateSingleDigits(t *testing.T) {
	date, ok := ParseBrazilianDate("5/3/2025")
	require.True(t, ok)
	require.Equal(t, NewCalendarDate(2025, time.March, 5), date)
}
