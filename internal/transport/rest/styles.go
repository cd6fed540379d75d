package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/service/style"
)

// styleService defines the minimal interface needed by StyleHandler.
type styleService interface {
	ProcessFiles(ctx context.Context, input style.ProcessFilesInput) (*domain.CustomTranslationStyle, error)
	GetStyle(ctx context.Context, id uuid.UUID) (*domain.CustomTranslationStyle, error)
	ListStyles(ctx context.Context) ([]*domain.CustomTranslationStyle, error)
	GetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, error)
	UpdateStyle(ctx context.Context, input style.UpdateStyleInput) (*domain.CustomTranslationStyle, error)
	DeleteStyle(ctx context.Context, id uuid.UUID) error
}

// StyleHandler serves style REST endpoints.
type StyleHandler struct {
	svc            styleService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewStyleHandler creates a StyleHandler.
func NewStyleHandler(svc styleService, maxUploadBytes int64, logger *slog.Logger) *StyleHandler {
	return &StyleHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "style"),
	}
}

type fileRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type processFilesRequest struct {
	Name           string        `json:"name"`
	Description    *string       `json:"description,omitempty"`
	SourceLanguage string        `json:"sourceLanguage"`
	TargetLanguage string        `json:"targetLanguage"`
	SourceFiles    []fileRequest `json:"sourceFiles"`
	TargetFiles    []fileRequest `json:"targetFiles"`
}

type updateStyleRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ProcessFiles handles POST /api/styles/process.
func (h *StyleHandler) ProcessFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	var req processFilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.ProcessFiles(r.Context(), style.ProcessFilesInput{
		Name:           req.Name,
		Description:    req.Description,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		SourceFiles:    toFileInputs(req.SourceFiles),
		TargetFiles:    toFileInputs(req.TargetFiles),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/styles.
func (h *StyleHandler) List(w http.ResponseWriter, r *http.Request) {
	styles, err := h.svc.ListStyles(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, styles)
}

// Lookup handles GET /api/styles/lookup?source=en&target=es.
func (h *StyleHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	target := r.URL.Query().Get("target")

	styles, err := h.svc.GetStylesByLanguagePair(r.Context(), source, target)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, styles)
}

// Get handles GET /api/styles/{id}.
func (h *StyleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.svc.GetStyle(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, found)
}

// Update handles PATCH /api/styles/{id}.
func (h *StyleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateStyle(r.Context(), style.UpdateStyleInput{
		StyleID:     id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/styles/{id}.
func (h *StyleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteStyle(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *StyleHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toFileInputs(files []fileRequest) []style.FileInput {
	inputs := make([]style.FileInput, len(files))
	for i, f := range files {
		inputs[i] = style.FileInput{Name: f.Name, Content: f.Content}
	}
	return inputs
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
