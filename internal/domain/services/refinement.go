package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// RefineRequest represents a targeted refinement of one section
type RefineRequest struct {
	UserID string `json:"-"`
	Prompt string `json:"prompt"`
}

// RefinementService appends refinement records to a section's history and
// keeps the section's live content in sync with the latest entry.
type RefinementService interface {
	// Refine runs one gateway call against the section's current content
	// and records the result. The history append and the content update
	// commit together.
	Refine(ctx context.Context, sectionID string, req *RefineRequest) (*models.Refinement, error)

	// ListRefinements retrieves a section's history in chronological order
	ListRefinements(ctx context.Context, sectionID, userID string) ([]models.Refinement, error)
}
