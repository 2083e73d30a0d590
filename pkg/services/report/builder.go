package report

import (
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/theme"
)

// RenderedTable is the transient, fully formatted form of one section.
type RenderedTable struct {
	Spec       SectionSpec
	Header     []string
	Rows       [][]string
	Total      []string // nil when no column aggregates
	HeaderFill theme.RGB
}

// BuildSection transforms a section's items into a themed table description.
// It returns nil for an empty collection: absent sections are omitted from
// the document entirely, never rendered as a header-only table.
//
// Items are emitted in input order. Per-item field failures degrade to the
// column defaults and never abort the section.
func BuildSection(spec SectionSpec, items []domain.ItemRecord, th theme.TradeTheme) *RenderedTable {
	if len(items) == 0 {
		return nil
	}

	header := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		header[i] = col.Label
	}

	sums := make([]float64, len(spec.Columns))
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			v := readField(item, col)
			row[i] = formatCell(col, v)
			if col.Aggregate == AggregateSum {
				sums[i] += numericValue(v)
			}
		}
		rows = append(rows, row)
	}

	var total []string
	if spec.hasAggregate() {
		total = make([]string, len(spec.Columns))
		total[0] = "TOTAL"
		for i, col := range spec.Columns {
			if col.Aggregate == AggregateSum {
				total[i] = formatCell(col, sums[i])
			}
		}
	}

	return &RenderedTable{
		Spec:       spec,
		Header:     header,
		Rows:       rows,
		Total:      total,
		HeaderFill: spec.headerFill(th),
	}
}
