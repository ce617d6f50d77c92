package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// CreateSectionRequest is one entry of a project's initial section batch
type CreateSectionRequest struct {
	Title    string `json:"title"`
	Position *int   `json:"position,omitempty"`
	IsSlide  *bool  `json:"is_slide,omitempty"`
}

// CreateProjectRequest represents a request to create a project, optionally
// with its initial sections
type CreateProjectRequest struct {
	UserID   string                 `json:"-"`
	Title    string                 `json:"title"`
	DocType  models.DocType         `json:"doc_type"`
	Prompt   *string                `json:"prompt,omitempty"`
	Sections []CreateSectionRequest `json:"sections,omitempty"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// CreateProject creates a project and its initial sections in one unit
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project with its ordered sections
	GetProject(ctx context.Context, id, userID string) (*models.Project, error)

	// ListProjects retrieves all projects for a user
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
}
