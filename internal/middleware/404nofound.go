package middleware

import (
	"github.com/haierkeys/light-notes-service/pkg/app"
	"github.com/haierkeys/light-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorNotFoundAPI)
		c.Abort()
	}
}

// NoMethod 405 handler. The body is the plain-text contract
// "Method Not Allowed".
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponse(code.ErrorMethodNotAllowed)
		c.Abort()
	}
}
