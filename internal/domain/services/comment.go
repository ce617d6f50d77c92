package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// CommentRequest represents a new comment on a section
type CommentRequest struct {
	UserID string `json:"-"`
	Text   string `json:"text"`
}

// CommentService manages section annotations
type CommentService interface {
	// AddComment attaches a comment to a section
	AddComment(ctx context.Context, sectionID string, req *CommentRequest) (*models.Comment, error)

	// ListComments retrieves a section's comments in chronological order
	ListComments(ctx context.Context, sectionID, userID string) ([]models.Comment, error)
}
