package api

// ReportRequest is the wire shape accepted by POST /generate-pdf.
//
// Sections carries the itemized collections keyed by section name; legacy
// producers use older key names (routes, deviceCounts, conduit) which the
// adapters layer resolves. When the request arrives form-encoded, Sections
// and Summary are embedded JSON strings decoded by the handler.
type ReportRequest struct {
	CompanyName string                      `json:"companyName"`
	ProjectName string                      `json:"projectName"`
	TradeType   string                      `json:"tradeType"`
	Sections    map[string][]map[string]any `json:"sections"`
	Summary     map[string]any              `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type InfoResponse struct {
	Service         string            `json:"service"`
	Version         string            `json:"version"`
	Endpoints       map[string]string `json:"endpoints"`
	SupportedTrades []string          `json:"supported_trades"`
	ExpectedFormat  map[string]string `json:"expected_format"`
}

type NotFoundResponse struct {
	Error              string   `json:"error"`
	AvailableEndpoints []string `json:"available_endpoints"`
}
