package api_router

import (
	"errors"

	"github.com/haierkeys/light-notes-service/internal/app"
	"github.com/haierkeys/light-notes-service/internal/domain"
	"github.com/haierkeys/light-notes-service/internal/dto"
	pkgapp "github.com/haierkeys/light-notes-service/pkg/app"
	"github.com/haierkeys/light-notes-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// NoteHandler notes API route handler
type NoteHandler struct {
	*Handler
}

// NewNoteHandler creates a NoteHandler instance.
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// List returns every note as a bare JSON array of {id, title, content},
// newest first. An empty table yields [].
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	notes, err := h.App.NoteService.List(ctx)
	if err != nil {
		h.App.Logger().Error("NoteHandler.List err", zap.Error(err))
		response.ToResponse(code.ErrorServiceUnavailable)
		return
	}

	list := make([]*dto.Note, 0, len(notes))
	for _, n := range notes {
		item := &dto.Note{}
		if err := copier.Copy(item, n); err != nil {
			h.App.Logger().Error("NoteHandler.List copy err", zap.Error(err))
			response.ToResponse(code.ErrorServerInternal)
			return
		}
		list = append(list, item)
	}

	response.ToList(list)
}

// Create inserts one note. Success acknowledges with {"success":true};
// the generated id is not returned. Missing or empty title/content is
// the documented 400 body.
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.CreateNoteRequest{}

	if err := c.ShouldBindJSON(params); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			response.ToResponse(code.ErrorMissingFields)
			return
		}
		h.App.Logger().Warn("NoteHandler.Create bind err", zap.Error(err))
		response.ToResponse(code.ErrorInvalidRequestBody)
		return
	}

	ctx := c.Request.Context()
	if err := h.App.NoteService.Create(ctx, params.Title, params.Content); err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			response.ToResponse(code.ErrorMissingFields)
			return
		}
		h.App.Logger().Error("NoteHandler.Create err", zap.Error(err))
		response.ToResponse(code.ErrorServiceUnavailable)
		return
	}

	response.ToResponse(code.Success)
}
