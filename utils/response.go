package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidationError returns every field-level violation at once so the
// frontend can render all of them next to their inputs.
func JSONValidationError(c *gin.Context, code int, errs map[string]string) {
	c.JSON(code, gin.H{"success": false, "errors": errs})
}
