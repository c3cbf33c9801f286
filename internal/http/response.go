package http

import "github.com/gin-gonic/gin"

func successResponse(data interface{}) gin.H {
	return gin.H{"success": true, "data": data}
}

func successMessage(data interface{}, message string) gin.H {
	return gin.H{"success": true, "data": data, "message": message}
}

func errorResponse(message string) gin.H {
	return gin.H{"success": false, "error": message}
}
