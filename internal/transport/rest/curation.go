package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/service/curation"
)

// curationService defines the minimal interface needed by CurationHandler.
type curationService interface {
	AddPair(ctx context.Context, input curation.AddPairInput) (*domain.TranslationPair, error)
	EditPair(ctx context.Context, input curation.EditPairInput) (*domain.TranslationPair, error)
	DeletePair(ctx context.Context, styleID, pairID uuid.UUID) error
	RefinePair(ctx context.Context, input curation.RefinePairInput) (*domain.TranslationPair, error)
	ResolveConflict(ctx context.Context, input curation.ResolveConflictInput) (*domain.TranslationConflict, error)
	UnresolveConflict(ctx context.Context, styleID, conflictID uuid.UUID) (*domain.TranslationConflict, error)
}

// CurationHandler serves pair and conflict curation endpoints.
type CurationHandler struct {
	svc curationService
	log *slog.Logger
}

// NewCurationHandler creates a CurationHandler.
func NewCurationHandler(svc curationService, logger *slog.Logger) *CurationHandler {
	return &CurationHandler{svc: svc, log: logger.With("handler", "curation")}
}

type addPairRequest struct {
	SourceText string  `json:"sourceText"`
	TargetText string  `json:"targetText"`
	Context    string  `json:"context,omitempty"`
	Confidence float64 `json:"confidence"`
}

type editPairRequest struct {
	SourceText *string  `json:"sourceText,omitempty"`
	TargetText *string  `json:"targetText,omitempty"`
	Context    *string  `json:"context,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type refinePairRequest struct {
	Reason string `json:"reason"`
}

type resolveConflictRequest struct {
	TargetText string `json:"targetText"`
}

// AddPair handles POST /api/styles/{id}/pairs.
func (h *CurationHandler) AddPair(w http.ResponseWriter, r *http.Request) {
	styleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req addPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.svc.AddPair(r.Context(), curation.AddPairInput{
		StyleID:    styleID,
		SourceText: req.SourceText,
		TargetText: req.TargetText,
		Context:    req.Context,
		Confidence: req.Confidence,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pair)
}

// EditPair handles PATCH /api/styles/{id}/pairs/{pairId}.
func (h *CurationHandler) EditPair(w http.ResponseWriter, r *http.Request) {
	styleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pairID, ok := pathUUID(w, r, "pairId")
	if !ok {
		return
	}

	var req editPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.svc.EditPair(r.Context(), curation.EditPairInput{
		StyleID:    styleID,
		PairID:     pairID,
		SourceText: req.SourceText,
		TargetText: req.TargetText,
		Context:    req.Context,
		Confidence: req.Confidence,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// DeletePair handles DELETE /api/styles/{id}/pairs/{pairId}.
func (h *CurationHandler) DeletePair(w http.ResponseWriter, r *http.Request) {
	styleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pairID, ok := pathUUID(w, r, "pairId")
	if !ok {
		return
	}

	if err := h.svc.DeletePair(r.Context(), styleID, pairID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefinePair handles POST /api/styles/{id}/pairs/{pairId}/refine.
func (h *CurationHandler) RefinePair(w http.ResponseWriter, r *http.Request) {
	styleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pairID, ok := pathUUID(w, r, "pairId")
	if !ok {
		return
	}

	var req refinePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.svc.RefinePair(r.Context(), curation.RefinePairInput{
		StyleID: styleID,
		PairID:  pairID,
		Reason:  req.Reason,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// ResolveConflict handles POST /api/styles/{id}/conflicts/{conflictId}/resolve.
func (h *CurationHandler) ResolveConflict(w http.ResponseWriter, r *http.Request) {
	styleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	conflictID, ok := pathUUID(w, r, "conflictId")
	if !ok {
		return
	}

	var req resolveConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conflict, err := h.svc.ResolveConflict(r.Context(), curation.ResolveConflictInput{
		StyleID:    styleID,
		ConflictID: conflictID,
		TargetText: req.TargetText,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, conflict)
}

// UnresolveConflict handles POST /api/styles/{id}/conflicts/{conflictId}/unresolve.
func (h *CurationHandler) UnresolveConflict(w http.ResponseWriter, r *http.Request) {
	styleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	conflictID, ok := pathUUID(w, r, "conflictId")
	if !ok {
		return
	}

	conflict, err := h.svc.UnresolveConflict(r.Context(), styleID, conflictID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, conflict)
}

func (h *CurationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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
