package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/llm"
)

// refinementService implements the RefinementService interface
type refinementService struct {
	projectRepo    repositories.ProjectRepository
	sectionRepo    repositories.SectionRepository
	refinementRepo repositories.RefinementRepository
	txManager      repositories.TransactionManager
	gateway        llm.Gateway
	logger         *slog.Logger
}

// NewRefinementService creates a new refinement service
func NewRefinementService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	refinementRepo repositories.RefinementRepository,
	txManager repositories.TransactionManager,
	gateway llm.Gateway,
	logger *slog.Logger,
) services.RefinementService {
	return &refinementService{
		projectRepo:    projectRepo,
		sectionRepo:    sectionRepo,
		refinementRepo: refinementRepo,
		txManager:      txManager,
		gateway:        gateway,
		logger:         logger,
	}
}

// Refine runs one gateway call against the section's current content, then
// commits the history append and the content update as one unit. The
// history itself is append-only; re-refining adds a new entry rather than
// rewriting an old one.
func (s *refinementService) Refine(ctx context.Context, sectionID string, req *services.RefineRequest) (*models.Refinement, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrValidation)
	}

	section, err := s.ownedSection(ctx, sectionID, req.UserID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Refine the following section content with instructions: %s\nCurrent content:\n%s",
		req.Prompt, section.Content)

	result := s.gateway.Generate(ctx, prompt, "")
	if result.Degraded {
		s.logger.Warn("refinement degraded",
			"section_id", section.ID,
			"provider", result.Provider,
			"reason", result.Reason)
	}

	refinement := &models.Refinement{
		SectionID:  section.ID,
		UserID:     req.UserID,
		Prompt:     req.Prompt,
		NewContent: result.Text,
		CreatedAt:  time.Now(),
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.refinementRepo.Create(txCtx, refinement); err != nil {
			return err
		}
		return s.sectionRepo.UpdateContent(txCtx, section.ID, refinement.NewContent)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("section refined",
		"section_id", section.ID,
		"refinement_id", refinement.ID)
	return refinement, nil
}

// ListRefinements retrieves a section's history in chronological order
func (s *refinementService) ListRefinements(ctx context.Context, sectionID, userID string) ([]models.Refinement, error) {
	if _, err := s.ownedSection(ctx, sectionID, userID); err != nil {
		return nil, err
	}
	return s.refinementRepo.ListBySection(ctx, sectionID)
}

// ownedSection loads a section and confirms the caller owns its project.
func (s *refinementService) ownedSection(ctx context.Context, sectionID, userID string) (*models.Section, error) {
	section, err := s.sectionRepo.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.GetByID(ctx, section.ProjectID, userID); err != nil {
		return nil, err
	}
	return section, nil
}
