package service

import (
	"context"
	"fmt"
	"log/slog"

	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/export"
)

// exportService implements the ExportService interface
type exportService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	logger      *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	logger *slog.Logger,
) services.ExportService {
	return &exportService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// Export renders the project into the binary format fixed by its doc type.
// The format is not a request parameter; a project exports the same way
// every time.
func (s *exportService) Export(ctx context.Context, projectID, userID string) (*services.ExportResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	result := &services.ExportResult{}
	if project.DocType.SlideByDefault() {
		result.Filename = fmt.Sprintf("project_%s.pptx", project.ID)
		result.MediaType = export.MediaTypePptx
		result.Data, err = export.PPTX(project, sections)
	} else {
		result.Filename = fmt.Sprintf("project_%s.docx", project.ID)
		result.MediaType = export.MediaTypeDocx
		result.Data, err = export.DOCX(project, sections)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", result.Filename, err)
	}

	s.logger.Info("project exported",
		"project_id", project.ID,
		"filename", result.Filename,
		"bytes", len(result.Data))
	return result, nil
}
