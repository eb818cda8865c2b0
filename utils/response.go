package utils

import "github.com/gin-gonic/gin"

// Helpers for the {status, message, data?, errors?} envelope every endpoint
// responds with.

func JSONData(c *gin.Context, code int, status, message string, data interface{}) {
	c.JSON(code, gin.H{"status": status, "message": message, "data": data})
}

func JSONMessage(c *gin.Context, code int, status, message string) {
	c.JSON(code, gin.H{"status": status, "message": message})
}

func JSONErrors(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, gin.H{"status": "errors", "message": message, "errors": errs})
}
