// Package code defines the deliberate responses this service puts on the wire.
package code

import "net/http"

// Code describes one response contract: an HTTP status plus either a
// JSON body or a plain-text body. The bodies are fixed, callers never
// mutate them.
type Code struct {
	status int
	body   any
	text   string
}

// NewCode creates a JSON response code.
func NewCode(status int, body any) *Code {
	return &Code{status: status, body: body}
}

// NewTextCode creates a plain-text response code.
func NewTextCode(status int, text string) *Code {
	return &Code{status: status, text: text}
}

// StatusCode returns the HTTP status.
func (c *Code) StatusCode() int {
	return c.status
}

// Body returns the JSON body.
func (c *Code) Body() any {
	return c.body
}

// Text returns the plain-text body.
func (c *Code) Text() string {
	return c.text
}

// IsText reports whether the response is plain text.
func (c *Code) IsText() bool {
	return c.text != ""
}

var (
	// Success is the insert acknowledgement. The generated id is not returned.
	Success = NewCode(http.StatusOK, map[string]any{"success": true})

	// ErrorMissingFields is returned when title or content is absent or empty.
	ErrorMissingFields = NewCode(http.StatusBadRequest, map[string]any{"error": "Missing fields"})

	// ErrorInvalidRequestBody is returned when the request body is not valid JSON.
	ErrorInvalidRequestBody = NewCode(http.StatusBadRequest, map[string]any{"error": "Invalid request body"})

	// ErrorServiceUnavailable is returned when the database cannot serve the request.
	ErrorServiceUnavailable = NewCode(http.StatusServiceUnavailable, map[string]any{"error": "Service unavailable"})

	// ErrorMethodNotAllowed is the plain-text 405 for any method other than GET/POST.
	ErrorMethodNotAllowed = NewTextCode(http.StatusMethodNotAllowed, "Method Not Allowed")

	ErrorNotFoundAPI     = NewCode(http.StatusNotFound, map[string]any{"error": "Not found"})
	ErrorTooManyRequests = NewCode(http.StatusTooManyRequests, map[string]any{"error": "Too many requests"})
	ErrorServerInternal  = NewCode(http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
)
