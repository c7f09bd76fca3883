package models

import "strings"

var cropEmojis = []struct {
	keyword string
	emoji   string
}{
	{"milho", "🌽"},
	{"soja", "🌱"},
	{"trigo", "🌾"},
	{"feijão", "🌰"},
}

const defaultCropEmoji = "🌿"

// CropEmoji picks the list icon for a crop name. The first keyword contained
// in the lowercased name wins.
func CropEmoji(crop string) string {
	lower := strings.ToLower(crop)
	for _, entry := range cropEmojis {
		if strings.Contains(lower, entry.keyword) {
			return entry.emoji
		}
	}
	return defaultCropEmoji
}
