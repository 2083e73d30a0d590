package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	handlers "github.com/trade-tools/estimate-press/pkg/handlers/report"
	"github.com/trade-tools/estimate-press/pkg/models/api"
	"github.com/trade-tools/estimate-press/pkg/models/domain"
	"github.com/trade-tools/estimate-press/pkg/services/report"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, req domain.ReportRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockRenderer) Filename(req domain.ReportRequest) string {
	args := m.Called(req)
	return args.String(0)
}

func newTestServer(t *testing.T, renderer handlers.Renderer, maxBody int64) *httptest.Server {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	router := ConfigureRouter(Config{
		Addr:            ":5000",
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    maxBody,
		Dependencies: Dependencies{
			Renderer: renderer,
			Logger:   logger,
		},
	})
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func TestWebAPI_GeneratePDF(t *testing.T) {
	ts := newTestServer(t, report.NewRenderer(report.DefaultSettings()), 50*1024*1024)

	payload := api.ReportRequest{
		CompanyName: "Acme Electric",
		ProjectName: "Office Tower",
		TradeType:   "HVAC",
		Sections: map[string][]map[string]any{
			"devices": {{"type": "RTU-1", "qty": 2, "laborHours": 4.5}},
		},
		Summary: map[string]any{"Total Cost": "$9,000.00"},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/generate-pdf", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Office_Tower_HVAC_Annotated.pdf"`,
		resp.Header.Get("Content-Disposition"))

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestWebAPI_GeneratePDF_FormEncoded(t *testing.T) {
	ts := newTestServer(t, report.NewRenderer(report.DefaultSettings()), 50*1024*1024)

	form := url.Values{}
	form.Set("companyName", "Acme Plumbing")
	form.Set("projectName", "Hospital Wing")
	form.Set("tradeType", "plumbing")
	form.Set("sections", `{"devices":[{"type":"Fixture","qty":3}]}`)
	form.Set("summary", `{"Total":"$1,200"}`)

	resp, err := http.Post(ts.URL+"/generate-pdf", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Hospital_Wing_Plumbing_Annotated.pdf"`,
		resp.Header.Get("Content-Disposition"))
}

func TestWebAPI_GeneratePDF_Multipart(t *testing.T) {
	ts := newTestServer(t, report.NewRenderer(report.DefaultSettings()), 50*1024*1024)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("companyName", "Acme Electric"))
	require.NoError(t, mw.WriteField("projectName", "Depot Retrofit"))
	require.NoError(t, mw.WriteField("tradeType", "electrical"))
	require.NoError(t, mw.WriteField("sections", `{"devices":[{"type":"Panelboard","qty":1}]}`))
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/generate-pdf", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Depot_Retrofit_Electrical_Annotated.pdf"`,
		resp.Header.Get("Content-Disposition"))
}

func TestWebAPI_GeneratePDF_Errors(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		expectedStatus int
	}{
		{
			name:           "malformed JSON body",
			contentType:    "application/json",
			body:           `{"companyName": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "form with unparsable embedded sections",
			contentType:    "application/x-www-form-urlencoded",
			body:           "sections=" + url.QueryEscape(`{"devices": [`),
			expectedStatus: http.StatusBadRequest,
		},
	}

	ts := newTestServer(t, report.NewRenderer(report.DefaultSettings()), 50*1024*1024)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/generate-pdf", tc.contentType, strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var errResp api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestWebAPI_GeneratePDF_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, report.NewRenderer(report.DefaultSettings()), 64)

	big := `{"companyName":"` + strings.Repeat("x", 256) + `"}`
	resp, err := http.Post(ts.URL+"/generate-pdf", "application/json", strings.NewReader(big))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestWebAPI_GeneratePDF_RenderFailure(t *testing.T) {
	failing := new(mockRenderer)
	failing.On("Render", mock.Anything, mock.Anything).
		Return(nil, domain.ErrRenderFailure)

	ts := newTestServer(t, failing, 50*1024*1024)

	resp, err := http.Post(ts.URL+"/generate-pdf", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	failing.AssertExpectations(t)
}

func TestWebAPI_HealthAndInfo(t *testing.T) {
	ts := newTestServer(t, report.NewRenderer(report.DefaultSettings()), 50*1024*1024)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var health api.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, "healthy", health.Status)
		assert.NotEmpty(t, health.Timestamp)
	})

	t.Run("info", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/info")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var info api.InfoResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
		assert.Equal(t, []string{"electrical", "hvac", "plumbing", "flooring"}, info.SupportedTrades)
		assert.Contains(t, info.Endpoints, "generate_pdf")
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var nf api.NotFoundResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&nf))
		assert.Contains(t, nf.AvailableEndpoints, "/generate-pdf")
	})
}
