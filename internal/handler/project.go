package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// defaultSuggestionCount is used when the suggest endpoint gets no count
// query parameter.
const defaultSuggestionCount = 5

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService    services.ProjectService
	generationService services.GenerationService
	outlineService    services.OutlineService
	exportService     services.ExportService
	logger            *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(
	projectService services.ProjectService,
	generationService services.GenerationService,
	outlineService services.OutlineService,
	exportService services.ExportService,
	logger *slog.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectService:    projectService,
		generationService: generationService,
		outlineService:    outlineService,
		exportService:     exportService,
		logger:            logger,
	}
}

// CreateProject creates a new project, optionally with initial sections
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = httputil.GetUserID(r)

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// ListProjects retrieves all projects for the user
// GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// GetProject retrieves a project with its ordered sections
// GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// Generate runs content generation over every section of the project
// POST /api/projects/{id}/generate
func (h *ProjectHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	sections, err := h.generationService.GenerateAll(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "generated",
		"sections": sections,
	})
}

// SuggestOutline proposes section titles for the project brief
// POST /api/projects/{id}/outline/suggest?count=5
func (h *ProjectHandler) SuggestOutline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	count := defaultSuggestionCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = parsed
	}

	suggestions, err := h.outlineService.SuggestOutline(r.Context(), id, httputil.GetUserID(r), count)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}

// applyOutlineRequest carries the accepted titles to append as sections
type applyOutlineRequest struct {
	Titles []string `json:"titles"`
}

// ApplyOutline appends one section per accepted title
// POST /api/projects/{id}/outline/apply
func (h *ProjectHandler) ApplyOutline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	var req applyOutlineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.outlineService.ApplyOutline(r.Context(), id, httputil.GetUserID(r), req.Titles)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"created": created,
	})
}

// Export renders the project into its binary office format
// GET /api/projects/{id}/export
func (h *ProjectHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	result, err := h.exportService.Export(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
