package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harsh15-create/real-unfoldindia-backend/internal/apperr"
)

// OK writes the payload as-is with status 200.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// UnprocessableEntity rejects malformed or empty input with 422.
func UnprocessableEntity(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "error": message})
}

// Error translates an application error to its boundary status and a short
// message. Internal error text never leaks past the message field.
func Error(c *gin.Context, err error) {
	ae := apperr.As(err)
	c.JSON(ae.HTTPStatus(), gin.H{"status": "error", "error": ae.Message()})
}
