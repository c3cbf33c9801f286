package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"civicboard/internal/http/middleware"
	"civicboard/internal/model"
)

const defaultStaffLimit = 50

func (h *Handler) listStaff(c *gin.Context) {
	departmentID, ok := parseUUIDQuery(c, "department")
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse("invalid department id"))
		return
	}

	filter := model.StaffFilter{
		Search:       strings.TrimSpace(c.Query("search")),
		DepartmentID: departmentID,
		Role:         model.StaffRole(strings.TrimSpace(c.Query("role"))),
		Status:       model.ActiveStatus(strings.TrimSpace(c.Query("status"))),
	}
	page := parsePageRequest(c, defaultStaffLimit)

	rows, pagination, err := h.staff.List(c.Request.Context(), filter, page)
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

func (h *Handler) createStaff(c *gin.Context) {
	var input model.CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	member, err := h.staff.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successMessage(member, "Staff member created successfully"))
}

func (h *Handler) updateStaff(c *gin.Context) {
	var input model.UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	member, err := h.staff.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successMessage(member, "Staff member updated successfully"))
}

func (h *Handler) deleteStaff(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Query("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("staff member id is required"))
		return
	}

	member, err := h.staff.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if principal, ok := middleware.MustPrincipal(c); ok {
		h.log.Info().
			Str("actor", principal.Username).
			Str("staff_id", id.String()).
			Msg("staff member deactivated")
	}

	c.JSON(http.StatusOK, successMessage(member, "Staff member deactivated successfully"))
}
