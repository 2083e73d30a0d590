package domain

// ItemRecord is an open mapping of scalar values describing one estimate
// line item. Producers disagree on key names, so nothing here is typed;
// the report service resolves fields through per-column alias chains.
type ItemRecord map[string]any

// ReportRequest is a fully parsed render request. It is built once by the
// adapters layer and never mutated afterwards.
type ReportRequest struct {
	CompanyName string
	ProjectName string
	TradeID     string
	Sections    map[string][]ItemRecord
	Summary     map[string]any
}

const (
	DefaultCompanyName = "Company"
	DefaultProjectName = "Project"
	DefaultTradeID     = "electrical"
)

// NewReportRequest returns a request with the documented defaults applied
// for missing top-level fields.
func NewReportRequest(company, project, trade string) ReportRequest {
	if company == "" {
		company = DefaultCompanyName
	}
	if project == "" {
		project = DefaultProjectName
	}
	if trade == "" {
		trade = DefaultTradeID
	}
	return ReportRequest{
		CompanyName: company,
		ProjectName: project,
		TradeID:     trade,
		Sections:    map[string][]ItemRecord{},
	}
}
