package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/trade-tools/estimate-press/pkg/adapters"
	"github.com/trade-tools/estimate-press/pkg/models/api"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/theme"
)

const (
	ServiceName    = "Estimate Press PDF Generator"
	ServiceVersion = "3.0.0"
)

// Renderer is the report service surface the handler depends on.
type Renderer interface {
	Render(ctx context.Context, req domain.ReportRequest) ([]byte, error)
	Filename(req domain.ReportRequest) string
}

type Handler struct {
	renderer     Renderer
	maxBodyBytes int64
}

func NewHandler(renderer Renderer, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 50 * 1024 * 1024
	}
	return &Handler{renderer: renderer, maxBodyBytes: maxBodyBytes}
}

// GeneratePDF accepts a JSON body, or a form body whose sections/summary
// fields carry embedded JSON, and responds with the rendered document as a
// file download.
func (h *Handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	apiReq, err := h.decodeRequest(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	req := adapters.MapReportRequestApiToDomain(*apiReq)

	out, err := h.renderer.Render(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("report render failed")
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid report input", err.Error())
		case errors.Is(err, domain.ErrResourceExceeded):
			writeError(w, http.StatusRequestEntityTooLarge, "report input exceeds limits", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "PDF generation failed", "")
		}
		return
	}

	filename := h.renderer.Filename(req)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(out); err != nil {
		logger.Error().Err(err).Msg("failed to write PDF response")
	}
}

func (h *Handler) decodeRequest(r *http.Request) (*api.ReportRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		return decodeForm(r)
	}

	var req api.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &req, nil
}

// multipartMaxMemory bounds how much of a multipart body is held in memory;
// the overall body size is already capped by MaxBytesReader.
const multipartMaxMemory = 10 << 20

// decodeForm reads the flat form fields and parses the sections and summary
// fields as embedded JSON documents. Multipart bodies need ParseMultipartForm;
// ParseForm alone would leave their fields unparsed.
func decodeForm(r *http.Request) (*api.ReportRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}

	req := api.ReportRequest{
		CompanyName: r.FormValue("companyName"),
		ProjectName: r.FormValue("projectName"),
		TradeType:   r.FormValue("tradeType"),
	}

	if raw := r.FormValue("sections"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Sections); err != nil {
			return nil, fmt.Errorf("%w: sections field is not valid JSON: %v", domain.ErrInvalidInput, err)
		}
	}
	if raw := r.FormValue("summary"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Summary); err != nil {
			return nil, fmt.Errorf("%w: summary field is not valid JSON: %v", domain.ErrInvalidInput, err)
		}
	}

	return &req, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   ServiceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.InfoResponse{
		Service: ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"health":       "/health",
			"generate_pdf": "/generate-pdf",
			"info":         "/api/info",
		},
		SupportedTrades: theme.SupportedTrades(),
		ExpectedFormat: map[string]string{
			"companyName": "string (optional)",
			"projectName": "string (optional)",
			"tradeType":   "string (optional, defaults to 'electrical')",
			"sections":    "mapping of section name to item list (optional)",
			"summary":     "mapping of label to value (optional)",
		},
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, api.NotFoundResponse{
		Error:              "Endpoint not found",
		AvailableEndpoints: []string{"/health", "/generate-pdf", "/api/info"},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg, Details: details})
}
