package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// SectionRepository defines data access operations for sections
type SectionRepository interface {
	// Create inserts a new section
	Create(ctx context.Context, section *models.Section) error

	// GetByID retrieves a section by ID
	GetByID(ctx context.Context, id string) (*models.Section, error)

	// ListByProject retrieves all sections of a project ordered by
	// position ascending, ties broken by creation time
	ListByProject(ctx context.Context, projectID string) ([]models.Section, error)

	// UpdateContent replaces a section's live content
	UpdateContent(ctx context.Context, id, content string) error
}
