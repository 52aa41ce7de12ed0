// Package api_router provides the HTTP API route handlers.
package api_router

import (
	"github.com/haierkeys/light-notes-service/internal/app"
)

// Handler base handler wrapping the App container.
// Every API handler embeds it to get dependency injection.
type Handler struct {
	App *app.App
}

// NewHandler creates a base Handler instance.
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}
