package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateProject creates a project and its initial sections in one transaction
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		UserID:    req.UserID,
		Title:     req.Title,
		DocType:   req.DocType,
		Prompt:    req.Prompt,
		CreatedAt: time.Now(),
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.projectRepo.Create(txCtx, project); err != nil {
			return err
		}
		for i, secReq := range req.Sections {
			section := models.Section{
				ProjectID: project.ID,
				Title:     secReq.Title,
				Position:  i,
				IsSlide:   req.DocType.SlideByDefault(),
				CreatedAt: time.Now(),
			}
			if secReq.Position != nil {
				section.Position = *secReq.Position
			}
			if secReq.IsSlide != nil {
				section.IsSlide = *secReq.IsSlide
			}
			if err := s.sectionRepo.Create(txCtx, &section); err != nil {
				return err
			}
			project.Sections = append(project.Sections, section)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", project.ID,
		"doc_type", project.DocType,
		"sections", len(project.Sections))
	return project, nil
}

// GetProject retrieves a project with its ordered sections
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.Sections = sections
	return project, nil
}

// ListProjects retrieves all projects for a user, newest first
func (s *projectService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projectRepo.List(ctx, userID)
}

func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxProjectTitleLength)),
	); err != nil {
		return err
	}
	if !req.DocType.Valid() {
		return fmt.Errorf("doc_type must be %q or %q", models.DocTypeDocx, models.DocTypePptx)
	}
	for i, sec := range req.Sections {
		if sec.Title == "" {
			return fmt.Errorf("sections[%d]: title is required", i)
		}
		if len(sec.Title) > config.MaxSectionTitleLength {
			return fmt.Errorf("sections[%d]: title exceeds %d characters", i, config.MaxSectionTitleLength)
		}
	}
	return nil
}
