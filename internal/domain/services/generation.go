package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// GenerationService drives section-by-section content generation for a
// project. Sections are visited sequentially in position order; a degraded
// result for one section never stops the remaining sections.
type GenerationService interface {
	// GenerateAll generates content for every section of the project and
	// returns the sections with their new content, in position order.
	GenerateAll(ctx context.Context, projectID, userID string) ([]models.Section, error)
}
