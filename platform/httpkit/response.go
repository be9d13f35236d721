// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 OK response with the given payload. The lookup API delivers
// every outcome, errors included, with HTTP 200; the payload shape carries
// the distinction.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
