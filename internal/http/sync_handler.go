package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civicboard/internal/model"
)

func (h *Handler) syncReport(c *gin.Context) {
	var payload model.SyncReportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	result, err := h.sync.UpsertReport(c.Request.Context(), payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"action":  result.Action,
		"report":  result.Report,
	})
}

func (h *Handler) getReportStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	status, err := h.sync.GetReportStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(status))
}
