// Package colors assigns stable display colors to dashboard entities.
// The hash must stay bit-compatible with the frontend's 32-bit rolling
// hash so both sides paint a campaign the same color.
package colors

import (
	"strings"
	"unicode/utf16"
)

// DefaultColor is used for unnamed entities. It is deliberately not
// part of any palette.
const DefaultColor = "#6b7280"

// CampaignPalette holds the campaign color range.
var CampaignPalette = []string{
	"#3b82f6", "#22c55e", "#a855f7", "#ec4899", "#eab308",
	"#6366f1", "#14b8a6", "#f97316", "#84cc16", "#f43f5e",
	"#8b5cf6", "#0ea5e9", "#f59e0b", "#10b981", "#ef4444",
	"#c026d3", "#e11d48", "#b91c1c", "#1d4ed8", "#15803d",
	"#06b6d4", "#4338ca", "#7f1d1d", "#7e22ce", "#a16207",
	"#0f766e", "#c2410c", "#0e7490", "#4d7c0f", "#b45309",
	"#047857", "#6d28d9", "#a21caf", "#be123c",
}

// DeveloperPalette holds the (smaller) developer color range used for
// novelty badges.
var DeveloperPalette = []string{
	"#22c55e", "#ec4899", "#ef4444", "#6366f1", "#a855f7",
	"#eab308", "#14b8a6", "#f97316", "#06b6d4", "#3b82f6",
}

// ColorFor deterministically maps a name onto one palette entry. The
// hash accumulates UTF-16 code units with 32-bit signed wraparound,
// matching charCodeAt-based hashing on the rendering side.
func ColorFor(name string, palette []string) string {
	if name == "" || len(palette) == 0 {
		return DefaultColor
	}

	var hash int32
	for _, unit := range utf16.Encode([]rune(name)) {
		hash = int32(unit) + ((hash << 5) - hash)
	}

	idx := int64(hash)
	if idx < 0 {
		idx = -idx
	}
	return palette[idx%int64(len(palette))]
}

// StatusColor maps the feed's exact status labels onto badge colors.
// Unknown labels fall back to the neutral default.
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "entregado":
		return "#22c55e"
	case "finalizado":
		return "#3b82f6"
	case "cancelado":
		return "#9a3412"
	case "en proceso":
		return "#eab308"
	case "proyectado":
		return "#6b7280"
	case "sin material":
		return "#ef4444"
	default:
		return DefaultColor
	}
}
