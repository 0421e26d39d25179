// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard JSON error envelope.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithFieldErrors writes a field->message map for form validation
// failures so the frontend can highlight each invalid field.
func RespondWithFieldErrors(c *gin.Context, code int, fields interface{}) {
	c.JSON(code, gin.H{"error": "validation failed", "fields": fields})
}
