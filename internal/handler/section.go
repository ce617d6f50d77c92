package handler

import (
	"log/slog"
	"net/http"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// SectionHandler handles refinement and comment HTTP requests for sections
type SectionHandler struct {
	refinementService services.RefinementService
	commentService    services.CommentService
	logger            *slog.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(
	refinementService services.RefinementService,
	commentService services.CommentService,
	logger *slog.Logger,
) *SectionHandler {
	return &SectionHandler{
		refinementService: refinementService,
		commentService:    commentService,
		logger:            logger,
	}
}

// CreateRefinement refines a section's content and records the result
// POST /api/sections/{id}/refinements
func (h *SectionHandler) CreateRefinement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req services.RefineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = httputil.GetUserID(r)

	refinement, err := h.refinementService.Refine(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, refinement)
}

// ListRefinements retrieves a section's refinement history, oldest first
// GET /api/sections/{id}/refinements
func (h *SectionHandler) ListRefinements(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	refinements, err := h.refinementService.ListRefinements(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, refinements)
}

// CreateComment attaches a comment to a section
// POST /api/sections/{id}/comments
func (h *SectionHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req services.CommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = httputil.GetUserID(r)

	comment, err := h.commentService.AddComment(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// ListComments retrieves a section's comments, oldest first
// GET /api/sections/{id}/comments
func (h *SectionHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	comments, err := h.commentService.ListComments(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comments)
}
