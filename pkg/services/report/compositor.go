package report

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/theme"
)

// Page geometry in millimetres, A4 portrait.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight

	titleHeight        = 12.0
	subtitleHeight     = 7.0
	metaHeight         = 6.0
	titleGap           = 4.0
	sectionTitleHeight = 8.0
	headRowHeight      = 8.0
	dataRowHeight      = 7.0
	sectionGap         = 6.0
	summaryRowHeight   = 6.0
	footerY            = pageHeight - 12.0
)

type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockSubtitle
	BlockMeta
	BlockSectionTitle
	BlockTableHead
	BlockTableRow
	BlockTotalRow
	BlockSummaryRow
	BlockFooter
)

// Block is one positioned draw instruction. The compositor decides geometry;
// the emitter only translates blocks into drawing calls.
type Block struct {
	Kind   BlockKind
	Y      float64
	Height float64
	Text   string
	Cells  []string
	Widths []float64
	Aligns []string
	Fill   theme.RGB
	Filled bool
}

// Page is an ordered sequence of blocks on one fixed-size page.
type Page struct {
	Blocks []Block
}

// Document is the composed input: one resolved theme plus the ordered,
// already-built section tables and the optional summary mapping.
type Document struct {
	Theme       theme.TradeTheme
	CompanyName string
	ProjectName string
	GeneratedAt string // display only; must not influence layout
	Tables      []*RenderedTable
	Summary     map[string]any
}

// Limits bounds composition so pathological inputs fail fast.
type Limits struct {
	MaxRows  int
	MaxPages int
}

// cursor tracks the vertical layout position across page breaks.
type cursor struct {
	pages    []Page
	y        float64
	maxPages int
}

func newCursor(maxPages int) *cursor {
	return &cursor{pages: []Page{{}}, y: marginTop, maxPages: maxPages}
}

func (c *cursor) fits(h float64) bool {
	return c.y+h <= pageHeight-marginBottom
}

func (c *cursor) pageBreak() error {
	if len(c.pages) >= c.maxPages {
		return fmt.Errorf("%w: page limit of %d reached", domain.ErrResourceExceeded, c.maxPages)
	}
	c.pages = append(c.pages, Page{})
	c.y = marginTop
	return nil
}

func (c *cursor) place(b Block) {
	b.Y = c.y
	p := &c.pages[len(c.pages)-1]
	p.Blocks = append(p.Blocks, b)
	c.y += b.Height
}

// Compose lays the document out onto one or more pages. The result is a pure
// function of the input: no time- or randomness-derived decision is made, so
// identical documents produce identical pages and coordinates.
func Compose(doc Document, limits Limits) ([]Page, error) {
	c := newCursor(limits.MaxPages)

	c.place(Block{Kind: BlockTitle, Height: titleHeight, Text: fmt.Sprintf("%s - %s", doc.CompanyName, doc.ProjectName)})
	c.place(Block{Kind: BlockSubtitle, Height: subtitleHeight, Text: fmt.Sprintf("%s Estimate Report", doc.Theme.DisplayName)})
	c.place(Block{Kind: BlockMeta, Height: metaHeight + titleGap, Text: "Generated: " + doc.GeneratedAt})

	for _, table := range doc.Tables {
		if table == nil {
			continue
		}
		if err := composeTable(c, table); err != nil {
			return nil, err
		}
	}

	if len(doc.Summary) > 0 {
		if err := composeSummary(c, doc.Summary); err != nil {
			return nil, err
		}
	}

	// Footer geometry is fixed at the page bottom; only the page count is
	// back-filled once composition settles.
	n := len(c.pages)
	for i := range c.pages {
		c.pages[i].Blocks = append(c.pages[i].Blocks, Block{
			Kind:   BlockFooter,
			Y:      footerY,
			Height: 5,
			Text:   fmt.Sprintf("Page %d of %d", i+1, n),
		})
	}

	return c.pages, nil
}

func composeTable(c *cursor, t *RenderedTable) error {
	widths := make([]float64, len(t.Spec.Columns))
	aligns := make([]string, len(t.Spec.Columns))
	for i, col := range t.Spec.Columns {
		widths[i] = col.Width
		aligns[i] = col.Align
	}

	head := Block{
		Kind:   BlockTableHead,
		Height: headRowHeight,
		Cells:  t.Header,
		Widths: widths,
		Aligns: aligns,
		Fill:   t.HeaderFill,
		Filled: true,
	}

	// The section title and table head never end a page alone: at least one
	// data row must fit below them.
	if !c.fits(sectionTitleHeight + headRowHeight + dataRowHeight) {
		if err := c.pageBreak(); err != nil {
			return err
		}
	}
	c.place(Block{Kind: BlockSectionTitle, Height: sectionTitleHeight, Text: t.Spec.Title, Fill: t.HeaderFill, Filled: true})
	c.place(head)

	for _, row := range t.Rows {
		if !c.fits(dataRowHeight) {
			if err := c.pageBreak(); err != nil {
				return err
			}
			c.place(head) // continuation repeats the themed head
		}
		c.place(Block{Kind: BlockTableRow, Height: dataRowHeight, Cells: row, Widths: widths, Aligns: aligns})
	}

	if t.Total != nil {
		if !c.fits(dataRowHeight) {
			if err := c.pageBreak(); err != nil {
				return err
			}
			c.place(head)
		}
		c.place(Block{
			Kind:   BlockTotalRow,
			Height: dataRowHeight,
			Cells:  t.Total,
			Widths: widths,
			Aligns: aligns,
			Fill:   theme.RGB{R: 236, G: 236, B: 236},
			Filled: true,
		})
	}

	c.y += sectionGap
	return nil
}

func composeSummary(c *cursor, summary map[string]any) error {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Keep the whole block together when it fits on the current page.
	needed := sectionTitleHeight + float64(len(keys))*summaryRowHeight
	if !c.fits(needed) && needed <= pageHeight-marginTop-marginBottom {
		if err := c.pageBreak(); err != nil {
			return err
		}
	}

	c.place(Block{Kind: BlockSectionTitle, Height: sectionTitleHeight, Text: "Project Summary"})
	for _, k := range keys {
		if !c.fits(summaryRowHeight) {
			if err := c.pageBreak(); err != nil {
				return err
			}
		}
		c.place(Block{
			Kind:   BlockSummaryRow,
			Height: summaryRowHeight,
			Cells:  []string{k, cast.ToString(summary[k])},
			Widths: []float64{60, contentWidth - 60},
			Aligns: []string{"L", "L"},
		})
	}
	return nil
}
