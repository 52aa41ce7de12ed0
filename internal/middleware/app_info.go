package middleware

import (
	"github.com/haierkeys/light-notes-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppInfoWithConfig injects app metadata into the request context
// (supports dependency injection)
func AppInfoWithConfig(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))

		c.Next()
	}
}
