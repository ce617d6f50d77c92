package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// commentService implements the CommentService interface
type commentService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	commentRepo repositories.CommentRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	commentRepo repositories.CommentRepository,
	logger *slog.Logger,
) services.CommentService {
	return &commentService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// AddComment attaches a comment to a section the caller owns
func (s *commentService) AddComment(ctx context.Context, sectionID string, req *services.CommentRequest) (*models.Comment, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	if len(req.Text) > config.MaxCommentLength {
		return nil, fmt.Errorf("%w: text exceeds %d characters", domain.ErrValidation, config.MaxCommentLength)
	}

	section, err := s.ownedSection(ctx, sectionID, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		SectionID: section.ID,
		UserID:    req.UserID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment added", "section_id", section.ID, "comment_id", comment.ID)
	return comment, nil
}

// ListComments retrieves a section's comments in chronological order
func (s *commentService) ListComments(ctx context.Context, sectionID, userID string) ([]models.Comment, error) {
	if _, err := s.ownedSection(ctx, sectionID, userID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListBySection(ctx, sectionID)
}

func (s *commentService) ownedSection(ctx context.Context, sectionID, userID string) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.GetByID(ctx, section.ProjectID, userID); err != nil {
		return nil, err
	}
	return section, nil
}
