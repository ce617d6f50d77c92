package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGateway records every prompt it receives and answers with either a
// canned reply or a deterministic echo.
type fakeGateway struct {
	prompts  []string
	reply    string
	degraded bool
}

func (g *fakeGateway) Generate(ctx context.Context, prompt, contextText string) llm.Result {
	g.prompts = append(g.prompts, prompt)
	text := g.reply
	if text == "" {
		text = "generated: " + prompt
	}
	return llm.Result{Text: text, Provider: "fake", Degraded: g.degraded}
}

type fakeTxManager struct {
	execErr error
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	if m.execErr != nil {
		return m.execErr
	}
	return fn(ctx)
}

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeProjectRepo struct {
	projects []*models.Project
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = fmt.Sprintf("proj-%d", len(r.projects)+1)
	clone := *project
	clone.Sections = nil
	r.projects = append(r.projects, &clone)
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, userID string) (*models.Project, error) {
	for _, p := range r.projects {
		if p.ID == id && p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProjectRepo) List(ctx context.Context, userID string) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeSectionRepo struct {
	sections  []*models.Section
	createErr error
}

func (r *fakeSectionRepo) Create(ctx context.Context, section *models.Section) error {
	if r.createErr != nil {
		return r.createErr
	}
	section.ID = fmt.Sprintf("sec-%d", len(r.sections)+1)
	clone := *section
	r.sections = append(r.sections, &clone)
	return nil
}

func (r *fakeSectionRepo) GetByID(ctx context.Context, id string) (*models.Section, error) {
	for _, s := range r.sections {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSectionRepo) ListByProject(ctx context.Context, projectID string) ([]models.Section, error) {
	out := []models.Section{}
	for _, s := range r.sections {
		if s.ProjectID == projectID {
			out = append(out, *s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeSectionRepo) UpdateContent(ctx context.Context, id, content string) error {
	for _, s := range r.sections {
		if s.ID == id {
			s.Content = content
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeRefinementRepo struct {
	refinements []*models.Refinement
}

func (r *fakeRefinementRepo) Create(ctx context.Context, refinement *models.Refinement) error {
	refinement.ID = fmt.Sprintf("ref-%d", len(r.refinements)+1)
	clone := *refinement
	r.refinements = append(r.refinements, &clone)
	return nil
}

func (r *fakeRefinementRepo) ListBySection(ctx context.Context, sectionID string) ([]models.Refinement, error) {
	out := []models.Refinement{}
	for _, ref := range r.refinements {
		if ref.SectionID == sectionID {
			out = append(out, *ref)
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments []*models.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = fmt.Sprintf("com-%d", len(r.comments)+1)
	clone := *comment
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *fakeCommentRepo) ListBySection(ctx context.Context, sectionID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.SectionID == sectionID {
			out = append(out, *c)
		}
	}
	return out, nil
}
