package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCropEmoji(t *testing.T) {
	require.Equal(t, "🌽", CropEmoji("Milho safrinha"))
	require.Equal(t, "🌱", CropEmoji("SOJA"))
	require.Equal(t, "🌾", CropEmoji("trigo"))
	require.Equal(t, "🌰", CropEmoji("Feijão preto"))
	require.Equal(t, "🌿", CropEmoji("Café"))
}
