package report

import (
	"strconv"

	"github.com/spf13/cast"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
)

// readField resolves one logical field from an open item record by walking
// the column's alias chain in declared order. A missing field yields the
// column's type default.
func readField(item domain.ItemRecord, col Column) any {
	for _, key := range col.Aliases {
		if v, ok := item[key]; ok && v != nil {
			return v
		}
	}
	return col.defaultValue()
}

// defaultValue is the per-kind fallback: 0 for numbers, empty string for
// text, true for compliance flags.
func (c Column) defaultValue() any {
	switch c.Kind {
	case ColumnNumber:
		return float64(0)
	case ColumnBool:
		return true
	default:
		return ""
	}
}

// numericValue coerces a raw field value for aggregation. Uncoercible
// garbage degrades to 0 rather than failing the row.
func numericValue(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// formatCell renders a raw field value as display text for one column.
// Truncation cuts at the configured width with no ellipsis marker.
func formatCell(col Column, v any) string {
	switch col.Kind {
	case ColumnNumber:
		return strconv.FormatFloat(numericValue(v), 'f', col.Decimals, 64)
	case ColumnBool:
		b, err := cast.ToBoolE(v)
		if err != nil {
			b = true
		}
		if b {
			return "PASS"
		}
		return "FAIL"
	default:
		s := cast.ToString(v)
		if col.Truncate > 0 {
			if r := []rune(s); len(r) > col.Truncate {
				s = string(r[:col.Truncate])
			}
		}
		return s
	}
}
