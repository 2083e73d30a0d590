// Package adapters maps wire models onto domain models.
package adapters

import (
	"github.com/trade-tools/estimate-press/pkg/models/api"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
)

// MapReportRequestApiToDomain converts a decoded wire request into the
// immutable domain request, applying the documented top-level defaults.
// Section keys pass through untouched; the report service resolves legacy
// key names itself.
func MapReportRequestApiToDomain(req api.ReportRequest) domain.ReportRequest {
	out := domain.NewReportRequest(req.CompanyName, req.ProjectName, req.TradeType)

	for name, items := range req.Sections {
		records := make([]domain.ItemRecord, 0, len(items))
		for _, item := range items {
			records = append(records, domain.ItemRecord(item))
		}
		out.Sections[name] = records
	}
	out.Summary = req.Summary

	return out
}
