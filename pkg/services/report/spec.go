package report

import "github.com/trade-tools/estimate-press/pkg/services/theme"

type ColumnKind string

const (
	ColumnText   ColumnKind = "text"
	ColumnNumber ColumnKind = "number"
	ColumnBool   ColumnKind = "bool"
)

type Aggregate string

const (
	AggregateNone Aggregate = ""
	AggregateSum  Aggregate = "sum"
)

// ThemeColor names which of the trade palette colors a section header uses.
type ThemeColor string

const (
	ColorPrimary   ThemeColor = "primary"
	ColorSecondary ThemeColor = "secondary"
	ColorAccent    ThemeColor = "accent"
)

// Column describes one typed table column. Aliases are consulted in order
// when reading an item; the first present, non-nil key wins.
type Column struct {
	Field     string
	Aliases   []string
	Label     string
	Width     float64 // mm
	Align     string  // "L", "C", "R"
	Kind      ColumnKind
	Decimals  int
	Aggregate Aggregate
	Truncate  int // max characters, 0 = unlimited
}

// SectionSpec is the compiled-in description of one optional report section.
type SectionSpec struct {
	Name        string
	LegacyName  string // older payload key for the same collection
	Title       string
	HeaderColor ThemeColor
	Columns     []Column
}

// sectionSpecs fixes both the set of renderable sections and their order in
// the document. Read-only after init.
var sectionSpecs = []SectionSpec{
	{
		Name:        "wireRoutes",
		LegacyName:  "routes",
		Title:       "Wire Routes",
		HeaderColor: ColorPrimary,
		Columns: []Column{
			{Field: "from", Aliases: []string{"from", "start", "source"}, Label: "From", Width: 45, Align: "L", Kind: ColumnText, Truncate: 25},
			{Field: "to", Aliases: []string{"to", "end", "destination"}, Label: "To", Width: 45, Align: "L", Kind: ColumnText, Truncate: 25},
			{Field: "wireType", Aliases: []string{"wireType", "type", "wire"}, Label: "Wire Type", Width: 40, Align: "L", Kind: ColumnText},
			{Field: "length", Aliases: []string{"length", "distance", "lengthFt"}, Label: "Length (ft)", Width: 28, Align: "R", Kind: ColumnNumber, Decimals: 1, Aggregate: AggregateSum},
			{Field: "conductors", Aliases: []string{"conductors", "wires"}, Label: "Cond.", Width: 22, Align: "R", Kind: ColumnNumber},
		},
	},
	{
		Name:        "devices",
		LegacyName:  "deviceCounts",
		Title:       "Device Counts",
		HeaderColor: ColorSecondary,
		Columns: []Column{
			{Field: "type", Aliases: []string{"type", "item", "device"}, Label: "Device", Width: 70, Align: "L", Kind: ColumnText},
			{Field: "quantity", Aliases: []string{"quantity", "qty", "count"}, Label: "Quantity", Width: 30, Align: "R", Kind: ColumnNumber, Aggregate: AggregateSum},
			{Field: "laborHours", Aliases: []string{"laborHours", "labor_hours", "hours"}, Label: "Labor Hours", Width: 40, Align: "R", Kind: ColumnNumber, Decimals: 2, Aggregate: AggregateSum},
			{Field: "necCompliant", Aliases: []string{"necCompliant", "nec_compliant", "compliant"}, Label: "NEC Compliant", Width: 40, Align: "C", Kind: ColumnBool},
		},
	},
	{
		Name:        "conduitRuns",
		LegacyName:  "conduit",
		Title:       "Conduit Runs",
		HeaderColor: ColorAccent,
		Columns: []Column{
			{Field: "size", Aliases: []string{"size", "diameter"}, Label: "Size", Width: 35, Align: "L", Kind: ColumnText},
			{Field: "material", Aliases: []string{"type", "material"}, Label: "Material", Width: 60, Align: "L", Kind: ColumnText},
			{Field: "length", Aliases: []string{"length", "distance", "lengthFt"}, Label: "Length (ft)", Width: 45, Align: "R", Kind: ColumnNumber, Decimals: 1, Aggregate: AggregateSum},
			{Field: "fillPercent", Aliases: []string{"fillPercent", "fill"}, Label: "Fill (%)", Width: 40, Align: "R", Kind: ColumnNumber, Decimals: 1},
		},
	},
}

// Sections returns the section registry in document order.
func Sections() []SectionSpec {
	return sectionSpecs
}

func (s SectionSpec) headerFill(th theme.TradeTheme) theme.RGB {
	switch s.HeaderColor {
	case ColorSecondary:
		return th.Secondary
	case ColorAccent:
		return th.Accent
	default:
		return th.Primary
	}
}

func (s SectionSpec) hasAggregate() bool {
	for _, c := range s.Columns {
		if c.Aggregate == AggregateSum {
			return true
		}
	}
	return false
}
