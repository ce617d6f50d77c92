package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/llm"
)

// titlePrefix matches leading list markers: "1." / "2)" numbering or
// "-" / "*" / "•" bullets.
var titlePrefix = regexp.MustCompile(`^\s*(\d+[.)]|[-*•])\s*`)

// ParseTitles turns raw gateway output into an ordered list of outline
// titles. It splits on newlines, strips list markers, and drops lines that
// end up empty. If nothing survives, the whole trimmed text comes back as a
// single title so a non-empty response always yields at least one entry.
// Pure function; same input always gives the same titles.
func ParseTitles(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title := strings.TrimSpace(titlePrefix.ReplaceAllString(line, ""))
		if title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) == 0 {
		return []string{strings.TrimSpace(raw)}
	}
	return titles
}

// outlineService implements the OutlineService interface
type outlineService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	txManager   repositories.TransactionManager
	gateway     llm.Gateway
	logger      *slog.Logger
}

// NewOutlineService creates a new outline service
func NewOutlineService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	txManager repositories.TransactionManager,
	gateway llm.Gateway,
	logger *slog.Logger,
) services.OutlineService {
	return &outlineService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		gateway:     gateway,
		logger:      logger,
	}
}

// SuggestOutline asks the gateway for count titles and parses them out of
// the response. Nothing is persisted; the client applies accepted titles
// explicitly.
func (s *outlineService) SuggestOutline(ctx context.Context, projectID, userID string, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", domain.ErrValidation)
	}

	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	about := project.Brief()
	if about == "" {
		about = project.Title
	}
	prompt := fmt.Sprintf("Suggest %d concise section or slide titles (one per line) for a document about: %s. Return titles only.", count, about)

	result := s.gateway.Generate(ctx, prompt, "")
	if result.Degraded {
		s.logger.Warn("outline suggestion degraded",
			"project_id", project.ID,
			"provider", result.Provider,
			"reason", result.Reason)
	}

	return ParseTitles(result.Text), nil
}

// ApplyOutline appends one section per title. Positions restart at the
// index within the submitted list, so applying the same outline twice
// yields two batches that share position numbers. Additive on purpose.
func (s *outlineService) ApplyOutline(ctx context.Context, projectID, userID string, titles []string) ([]models.Section, error) {
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: titles must not be empty", domain.ErrValidation)
	}
	for i, title := range titles {
		if strings.TrimSpace(title) == "" {
			return nil, fmt.Errorf("%w: titles[%d] is empty", domain.ErrValidation, i)
		}
	}

	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	created := make([]models.Section, 0, len(titles))
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		for i, title := range titles {
			section := models.Section{
				ProjectID: project.ID,
				Title:     title,
				Position:  i,
				IsSlide:   project.DocType.SlideByDefault(),
				CreatedAt: time.Now(),
			}
			if err := s.sectionRepo.Create(txCtx, &section); err != nil {
				return err
			}
			created = append(created, section)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("outline applied",
		"project_id", project.ID,
		"sections", len(created))
	return created, nil
}
