package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicboard/internal/model"
)

func (h *Handler) listDepartments(c *gin.Context) {
	departments, err := h.departments.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(departments))
}

func (h *Handler) createDepartment(c *gin.Context) {
	var input model.CreateDepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	dept, err := h.departments.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successMessage(dept, "Department created successfully"))
}
