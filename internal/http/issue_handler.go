package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civicboard/internal/http/middleware"
	"civicboard/internal/model"
)

const defaultIssueLimit = 20

func (h *Handler) listIssues(c *gin.Context) {
	departmentID, ok := parseUUIDQuery(c, "department")
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse("invalid department id"))
		return
	}

	filter := model.IssueFilter{
		Search:       strings.TrimSpace(c.Query("search")),
		Status:       model.IssueStatus(strings.TrimSpace(c.Query("status"))),
		Priority:     model.IssuePriority(strings.TrimSpace(c.Query("priority"))),
		DepartmentID: departmentID,
	}
	sort := model.ResolveSort(model.IssueSortColumns, c.Query("sortBy"), c.Query("sortOrder"))
	page := parsePageRequest(c, defaultIssueLimit)

	rows, pagination, err := h.issues.List(c.Request.Context(), filter, sort, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       rows,
		"pagination": pagination,
	})
}

func (h *Handler) updateIssue(c *gin.Context) {
	var upd model.IssueUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	issue, err := h.issues.Update(c.Request.Context(), upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if principal, ok := middleware.MustPrincipal(c); ok {
		h.log.Info().
			Str("actor", principal.Username).
			Str("issue_id", upd.ID.String()).
			Msg("issue updated")
	}

	c.JSON(http.StatusOK, successMessage(issue, "Issue updated successfully"))
}
