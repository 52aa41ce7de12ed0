// Package dto defines request and response shapes.
package dto

// CreateNoteRequest is the POST body. Both fields are required and
// non-empty; gin's validator rejects absent and empty values alike.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Note is the wire shape of a persisted note.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
