package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/theme"
)

// Neutral palette shared by every trade theme.
var (
	colorTextDark  = theme.RGB{R: 44, G: 62, B: 80}
	colorTextMuted = theme.RGB{R: 127, G: 140, B: 141}
	colorGridLine  = theme.RGB{R: 220, G: 220, B: 220}
	colorWhite     = theme.RGB{R: 255, G: 255, B: 255}
)

// emit serializes composed pages into PDF bytes. The creation date is pinned
// to the render clock so identical inputs produce identical bytes. Emission
// is all-or-nothing: any underlying drawing error aborts with no output.
func emit(doc Document, pages []Page, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(fmt.Sprintf("%s - %s", doc.CompanyName, doc.ProjectName), true)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	// The compositor owns pagination; fpdf must never break pages on its own.
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range pages {
		pdf.AddPage()

		// Top accent bar in the trade's primary color.
		setFill(pdf, doc.Theme.Primary)
		pdf.Rect(0, 0, pageWidth, 4, "F")

		for _, b := range page.Blocks {
			drawBlock(pdf, doc, b)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

func drawBlock(pdf *fpdf.Fpdf, doc Document, b Block) {
	switch b.Kind {
	case BlockTitle:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "B", 18)
		setText(pdf, colorTextDark)
		pdf.CellFormat(contentWidth, b.Height, b.Text, "", 0, "L", false, 0, "")
	case BlockSubtitle:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "B", 11)
		setText(pdf, doc.Theme.Primary)
		pdf.CellFormat(contentWidth, b.Height, b.Text, "", 0, "L", false, 0, "")
	case BlockMeta:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "", 9)
		setText(pdf, colorTextMuted)
		pdf.CellFormat(contentWidth, metaHeight, b.Text, "", 0, "L", false, 0, "")
	case BlockSectionTitle:
		x := marginLeft
		if b.Filled {
			setFill(pdf, b.Fill)
			pdf.Rect(marginLeft, b.Y+1.5, 1.5, b.Height-3, "F")
			x += 4
		}
		pdf.SetXY(x, b.Y)
		pdf.SetFont("Arial", "B", 12)
		setText(pdf, colorTextDark)
		pdf.CellFormat(contentWidth-(x-marginLeft), b.Height, b.Text, "", 0, "L", false, 0, "")
	case BlockTableHead:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "B", 9)
		setText(pdf, colorWhite)
		setFill(pdf, b.Fill)
		setDraw(pdf, colorGridLine)
		drawCells(pdf, b, true)
	case BlockTableRow:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "", 9)
		setText(pdf, colorTextDark)
		setDraw(pdf, colorGridLine)
		drawCells(pdf, b, false)
	case BlockTotalRow:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "B", 9)
		setText(pdf, colorTextDark)
		setFill(pdf, b.Fill)
		setDraw(pdf, colorGridLine)
		drawCells(pdf, b, true)
	case BlockSummaryRow:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "", 9)
		setText(pdf, colorTextDark)
		setDraw(pdf, colorGridLine)
		drawCells(pdf, b, false)
	case BlockFooter:
		pdf.SetXY(marginLeft, b.Y)
		pdf.SetFont("Arial", "", 8)
		setText(pdf, colorTextMuted)
		pdf.CellFormat(contentWidth/2, b.Height, fmt.Sprintf("%s Estimating Report", doc.Theme.DisplayName), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, b.Height, b.Text, "", 0, "R", false, 0, "")
	}
}

func drawCells(pdf *fpdf.Fpdf, b Block, fill bool) {
	for i, cell := range b.Cells {
		align := "L"
		if i < len(b.Aligns) {
			align = b.Aligns[i]
		}
		pdf.CellFormat(b.Widths[i], b.Height, cell, "1", 0, align, fill, 0, "")
	}
}

func setText(pdf *fpdf.Fpdf, c theme.RGB) { pdf.SetTextColor(c.R, c.G, c.B) }
func setFill(pdf *fpdf.Fpdf, c theme.RGB) { pdf.SetFillColor(c.R, c.G, c.B) }
func setDraw(pdf *fpdf.Fpdf, c theme.RGB) { pdf.SetDrawColor(c.R, c.G, c.B) }
