package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// RefinementRepository defines data access operations for the append-only
// refinement history. There is no update or delete: history is immutable.
type RefinementRepository interface {
	// Create appends a refinement to a section's history
	Create(ctx context.Context, refinement *models.Refinement) error

	// ListBySection retrieves a section's history in chronological order
	ListBySection(ctx context.Context, sectionID string) ([]models.Refinement, error)
}
