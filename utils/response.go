package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {success, message?, data?, error?}. The 401 and 404 shapes are fixed and
// shared across all routes.

func OK(c *gin.Context, message string, data any) {
	respond(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	respond(c, http.StatusCreated, message, data)
}

func respond(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

func BadRequest(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Bad Request",
		"message": messages,
	})
}

func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthorized",
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"data":    nil,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{
		"success": false,
		"message": message,
	})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error",
	})
}
