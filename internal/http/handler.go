package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"civicboard/internal/model"
	"civicboard/internal/service"
)

type Handler struct {
	analytics   *service.AnalyticsService
	issues      *service.IssueService
	staff       *service.StaffService
	departments *service.DepartmentService
	sync        *service.SyncService
	log         zerolog.Logger
}

func NewHandler(
	analytics *service.AnalyticsService,
	issues *service.IssueService,
	staff *service.StaffService,
	departments *service.DepartmentService,
	sync *service.SyncService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		analytics:   analytics,
		issues:      issues,
		staff:       staff,
		departments: departments,
		sync:        sync,
		log:         log,
	}
}

func (h *Handler) getDashboardStats(c *gin.Context) {
	summary, err := h.analytics.GetDashboardSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) getReports(c *gin.Context) {
	periodDays := 0
	if raw := strings.TrimSpace(c.Query("period")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			periodDays = parsed
		}
	}
	departmentID, ok := parseUUIDQuery(c, "department")
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse("invalid department id"))
		return
	}

	report, err := h.analytics.GetPeriodReport(c.Request.Context(), periodDays, departmentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) exportReport(c *gin.Context) {
	var req model.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	job, err := h.analytics.ExportReport(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "Report export initiated. " + strings.ToUpper(job.Format) + " file will be ready for download shortly."
	c.JSON(http.StatusOK, successMessage(job, message))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

// parseUUIDQuery reads an optional UUID query parameter. An absent parameter
// is fine (nil, true); a present but unparseable one reports false so the
// handler can reject it instead of quietly widening the result set.
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func parsePageRequest(c *gin.Context, defaultLimit int) model.PageRequest {
	page := model.PageRequest{}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Limit = parsed
		}
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Offset = parsed
		}
	}
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Page = parsed
		}
	}
	if raw := strings.TrimSpace(c.Query("unbounded")); raw != "" {
		page.Unbounded, _ = strconv.ParseBool(raw)
	}
	return page.Normalize(defaultLimit)
}
