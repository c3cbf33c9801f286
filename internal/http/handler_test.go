package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicboard/internal/service"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(
		service.NewAnalyticsService(nil, 30, 365),
		nil, nil, nil, nil,
		zerolog.Nop(),
	)
	router := gin.New()
	router.POST("/api/reports/export", h.exportReport)
	return router
}

func TestExportReportEndpoint(t *testing.T) {
	router := newExportRouter()

	body := `{"format":"xlsx","period":90,"reportType":"summary"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Format      string `json:"format"`
			PeriodDays  int    `json:"period"`
			DownloadURL string `json:"downloadUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "XLSX")
	assert.Equal(t, "xlsx", resp.Data.Format)
	assert.Equal(t, 90, resp.Data.PeriodDays)
	assert.True(t, strings.HasPrefix(resp.Data.DownloadURL, "/api/reports/download/"))
}

func TestExportReportRejectsUnknownFormat(t *testing.T) {
	router := newExportRouter()

	body := `{"format":"docx","period":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/reports/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"unsupported export format"}`, rec.Body.String())
}

func TestBadDepartmentFilterIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(
		service.NewAnalyticsService(nil, 30, 365),
		nil, nil, nil, nil,
		zerolog.Nop(),
	)
	router := gin.New()
	router.GET("/api/reports", h.getReports)
	router.GET("/api/issues", h.listIssues)
	router.GET("/api/staff", h.listStaff)

	// A present but unparseable department id must 400, never silently fall
	// back to the unfiltered result set.
	for _, path := range []string{
		"/api/reports?department=not-a-uuid",
		"/api/issues?department=not-a-uuid",
		"/api/staff?department=not-a-uuid",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.JSONEq(t, `{"success":false,"error":"invalid department id"}`, rec.Body.String(), path)
	}
}

func TestExportReportRejectsBadBody(t *testing.T) {
	router := newExportRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/export", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid request body"}`, rec.Body.String())
}
