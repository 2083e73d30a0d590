// Package theme holds the per-trade white-label palettes applied to a render.
package theme

import "strings"

// RGB is a color in 0-255 components.
type RGB struct {
	R, G, B int
}

// TradeTheme is the color and label configuration for one trade.
type TradeTheme struct {
	ID          string
	DisplayName string
	Primary     RGB
	Secondary   RGB
	Accent      RGB
}

// DefaultTradeID is used whenever the requested trade is absent or unknown.
const DefaultTradeID = "electrical"

// trades is read-only after init; safe for unsynchronized concurrent reads.
var trades = map[string]TradeTheme{
	"electrical": {
		ID:          "electrical",
		DisplayName: "Electrical",
		Primary:     RGB{0, 102, 204},
		Secondary:   RGB{0, 51, 102},
		Accent:      RGB{255, 152, 0},
	},
	"hvac": {
		ID:          "hvac",
		DisplayName: "HVAC",
		Primary:     RGB{255, 107, 0},
		Secondary:   RGB{204, 85, 0},
		Accent:      RGB{255, 184, 77},
	},
	"plumbing": {
		ID:          "plumbing",
		DisplayName: "Plumbing",
		Primary:     RGB{33, 150, 243},
		Secondary:   RGB{21, 101, 192},
		Accent:      RGB{100, 181, 246},
	},
	"flooring": {
		ID:          "flooring",
		DisplayName: "Flooring",
		Primary:     RGB{139, 69, 19},
		Secondary:   RGB{101, 67, 33},
		Accent:      RGB{205, 133, 63},
	},
}

// Resolve maps a trade id to its theme. Matching is case-insensitive and an
// empty or unrecognized id falls back to the default trade; callers never
// see an error for an unknown trade.
func Resolve(id string) TradeTheme {
	if t, ok := trades[strings.ToLower(id)]; ok {
		return t
	}
	return trades[DefaultTradeID]
}

// SupportedTrades lists the known trade ids in a stable order.
func SupportedTrades() []string {
	return []string{"electrical", "hvac", "plumbing", "flooring"}
}
