package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFixed2(t *testing.T) {
	require.Equal(t, "1234.50", FormatFixed2(1234.5))
	require.Equal(t, "300.00", FormatFixed2(300))
	require.Equal(t, "-750.00", FormatFixed2(-750))
	require.Equal(t, "0.00", FormatFixed2(0))
	require.Equal(t, "+Inf", FormatFixed2(math.Inf(1)))
}

func TestFormatArea(t *testing.T) {
	require.Equal(t, "2", FormatArea(2))
	require.Equal(t, "2.5", FormatArea(2.5))
	require.Equal(t, "0.1", FormatArea(0.1))
	require.Equal(t, "0.000001", FormatArea(0.000001))
	require.Equal(t, "123456789012345680000", FormatArea(123456789012345680000))
}

func TestFormatAreaExponent(t *testing.T) {
	require.Equal(t, "1e+200", FormatArea(1e200))
	require.Equal(t, "-2.5e+21", FormatArea(-2.5e21))
	require.Equal(t, "1.5e-7", FormatArea(1.5e-7))
	require.Equal(t, "0", FormatArea(0))
}
