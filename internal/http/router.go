package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handler, sessionAuth, syncAuth gin.HandlerFunc, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	api := r.Group("/api")

	protected := api.Group("", sessionAuth)
	protected.GET("/dashboard/stats", h.getDashboardStats)
	protected.GET("/departments", h.listDepartments)
	protected.POST("/departments", h.createDepartment)
	protected.GET("/staff", h.listStaff)
	protected.POST("/staff", h.createStaff)
	protected.PUT("/staff", h.updateStaff)
	protected.DELETE("/staff", h.deleteStaff)
	protected.GET("/issues", h.listIssues)
	protected.PUT("/issues", h.updateIssue)
	protected.GET("/reports", h.getReports)
	protected.POST("/reports/export", h.exportReport)

	external := api.Group("", syncAuth)
	external.POST("/sync/report", h.syncReport)
	external.GET("/reports/:id/status", h.getReportStatus)

	return r
}
