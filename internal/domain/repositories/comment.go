package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// CommentRepository defines data access operations for comments
type CommentRepository interface {
	// Create inserts a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// ListBySection retrieves a section's comments in chronological order
	ListBySection(ctx context.Context, sectionID string) ([]models.Comment, error)
}
