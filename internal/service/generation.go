package service

import (
	"context"
	"fmt"
	"log/slog"

	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/llm"
)

// generationService implements the GenerationService interface
type generationService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	gateway     llm.Gateway
	logger      *slog.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	gateway llm.Gateway,
	logger *slog.Logger,
) services.GenerationService {
	return &generationService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// GenerateAll generates content for every section of the project, one
// gateway call per section in position order. A degraded result is stored
// like any other and generation moves on to the next section.
func (s *generationService) GenerateAll(ctx context.Context, projectID, userID string) ([]models.Section, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	for i := range sections {
		prompt := fmt.Sprintf("Write content for section titled '%s' about: %s",
			sections[i].Title, project.Brief())

		result := s.gateway.Generate(ctx, prompt, "")
		if result.Degraded {
			s.logger.Warn("section generation degraded",
				"project_id", project.ID,
				"section_id", sections[i].ID,
				"provider", result.Provider,
				"reason", result.Reason)
		}

		if err := s.sectionRepo.UpdateContent(ctx, sections[i].ID, result.Text); err != nil {
			return nil, err
		}
		sections[i].Content = result.Text
	}

	s.logger.Info("project content generated",
		"project_id", project.ID,
		"sections", len(sections))
	return sections, nil
}
