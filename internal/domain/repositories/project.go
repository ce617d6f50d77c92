package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	// Create inserts a new project and fills in its generated fields
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project owned by the given user
	GetByID(ctx context.Context, id, userID string) (*models.Project, error)

	// List retrieves all projects for a user, newest first
	List(ctx context.Context, userID string) ([]models.Project, error)
}
