package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// OutlineService turns a project brief into proposed section titles and
// applies an accepted outline as new sections.
type OutlineService interface {
	// SuggestOutline asks the gateway for count titles and parses them.
	// Titles are never persisted here; the client accepts them explicitly.
	SuggestOutline(ctx context.Context, projectID, userID string, count int) ([]string, error)

	// ApplyOutline appends one section per title, positioned by the
	// title's index in the submitted list. Additive and non-idempotent:
	// applying the same titles twice creates two independent batches.
	ApplyOutline(ctx context.Context, projectID, userID string, titles []string) ([]models.Section, error)
}
