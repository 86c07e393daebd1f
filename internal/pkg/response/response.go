package response

import (
	"errors"
	"net/http"

	"bookingservice/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// JSON writes a success payload as-is.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes the single-message error payload with an explicit status.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error maps an engine failure to a status code. errors.As also resolves
// apperr values wrapped by a lower persistence layer, so those still answer
// their own status instead of 500.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.StatusCode(), gin.H{"message": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
