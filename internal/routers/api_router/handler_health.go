package api_router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health liveness probe for the private listener.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
