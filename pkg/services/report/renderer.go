// Package report implements the document-layout engine: section building,
// deterministic pagination, and PDF emission for trade estimate reports.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/theme"
)

// Settings bounds a single render. Zero values fall back to the defaults.
type Settings struct {
	MaxRows  int
	MaxPages int
}

// DefaultSettings returns the default render limits.
func DefaultSettings() Settings {
	return Settings{
		MaxRows:  5000,
		MaxPages: 200,
	}
}

// Renderer turns report requests into PDF bytes. It holds no per-request
// state: concurrent renders are independent.
type Renderer struct {
	settings Settings
	now      func() time.Time
}

func NewRenderer(settings Settings) *Renderer {
	def := DefaultSettings()
	if settings.MaxRows <= 0 {
		settings.MaxRows = def.MaxRows
	}
	if settings.MaxPages <= 0 {
		settings.MaxPages = def.MaxPages
	}
	return &Renderer{settings: settings, now: time.Now}
}

// Render produces the complete PDF for one request, or fails with one of the
// domain error kinds. There is no partial-document success.
func (r *Renderer) Render(ctx context.Context, req domain.ReportRequest) ([]byte, error) {
	logger := zerolog.Ctx(ctx)
	start := r.now()

	th := theme.Resolve(req.TradeID)

	// Only rows that will actually reach the page count against the
	// ceiling; unrecognized section keys are ignored everywhere.
	rowCount := 0
	for _, spec := range sectionSpecs {
		rowCount += len(sectionItems(req.Sections, spec))
	}
	if rowCount > r.settings.MaxRows {
		return nil, fmt.Errorf("%w: %d items exceed the %d row limit", domain.ErrResourceExceeded, rowCount, r.settings.MaxRows)
	}

	tables := make([]*RenderedTable, 0, len(sectionSpecs))
	for _, spec := range sectionSpecs {
		tables = append(tables, BuildSection(spec, sectionItems(req.Sections, spec), th))
	}

	doc := Document{
		Theme:       th,
		CompanyName: req.CompanyName,
		ProjectName: req.ProjectName,
		GeneratedAt: start.Format("January 2, 2006 15:04 MST"),
		Tables:      tables,
		Summary:     req.Summary,
	}

	pages, err := Compose(doc, Limits(r.settings))
	if err != nil {
		return nil, err
	}

	out, err := emit(doc, pages, start)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("company", req.CompanyName).
		Str("project", req.ProjectName).
		Str("trade", th.ID).
		Int("rows", rowCount).
		Int("pages", len(pages)).
		Int("bytes", len(out)).
		Msg("report rendered")

	return out, nil
}

// Filename derives the download name consuming systems depend on:
// spaces become underscores and the resolved trade display name is embedded.
func (r *Renderer) Filename(req domain.ReportRequest) string {
	th := theme.Resolve(req.TradeID)
	project := strings.ReplaceAll(req.ProjectName, " ", "_")
	return project + "_" + th.DisplayName + "_Annotated.pdf"
}

// sectionItems resolves a section's collection the same way column aliases
// are resolved: the current key first, then the legacy key, else absent.
func sectionItems(sections map[string][]domain.ItemRecord, spec SectionSpec) []domain.ItemRecord {
	if items, ok := sections[spec.Name]; ok {
		return items
	}
	return sections[spec.LegacyName]
}
