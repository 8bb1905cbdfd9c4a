package apierr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes err as the error body. 5xx は c.Errors に積んでログにも残す
func Respond(c *gin.Context, err error) {
	status := ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, FromErr(err))
}
