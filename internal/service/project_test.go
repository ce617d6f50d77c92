package service

import (
	"context"
	"errors"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/services"
)

func newProjectFixture() (*fakeProjectRepo, *fakeSectionRepo, services.ProjectService) {
	projects := &fakeProjectRepo{}
	sections := &fakeSectionRepo{}
	svc := NewProjectService(projects, sections, &fakeTxManager{}, testLogger())
	return projects, sections, svc
}

func TestCreateProjectWithInitialSections(t *testing.T) {
	_, sections, svc := newProjectFixture()

	prompt := "an investor pitch"
	project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		UserID:  "user-1",
		Title:   "Pitch Deck",
		DocType: models.DocTypePptx,
		Prompt:  &prompt,
		Sections: []services.CreateSectionRequest{
			{Title: "Problem"},
			{Title: "Solution"},
			{Title: "Ask"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if project.ID == "" {
		t.Error("project ID not assigned")
	}
	if len(project.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(project.Sections))
	}
	for i, sec := range project.Sections {
		if sec.Position != i {
			t.Errorf("section %d position = %d, want index order", i, sec.Position)
		}
		if !sec.IsSlide {
			t.Errorf("section %d IsSlide = false, want slide default for pptx", i)
		}
		if sec.ProjectID != project.ID {
			t.Errorf("section %d not linked to project", i)
		}
	}

	stored, _ := sections.ListByProject(context.Background(), project.ID)
	if len(stored) != 3 {
		t.Errorf("persisted sections = %d, want 3", len(stored))
	}
}

func TestCreateProjectSectionOverrides(t *testing.T) {
	_, _, svc := newProjectFixture()

	pos := 7
	slide := true
	project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		UserID:  "user-1",
		Title:   "Report",
		DocType: models.DocTypeDocx,
		Sections: []services.CreateSectionRequest{
			{Title: "Appendix", Position: &pos, IsSlide: &slide},
		},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	sec := project.Sections[0]
	if sec.Position != 7 {
		t.Errorf("position = %d, want explicit override 7", sec.Position)
	}
	if !sec.IsSlide {
		t.Error("IsSlide override ignored")
	}
}

func TestCreateProjectValidation(t *testing.T) {
	_, _, svc := newProjectFixture()

	tests := []struct {
		name string
		req  services.CreateProjectRequest
	}{
		{"missing title", services.CreateProjectRequest{UserID: "user-1", DocType: models.DocTypeDocx}},
		{"missing user", services.CreateProjectRequest{Title: "T", DocType: models.DocTypeDocx}},
		{"bad doc type", services.CreateProjectRequest{UserID: "user-1", Title: "T", DocType: "xlsx"}},
		{"blank section title", services.CreateProjectRequest{
			UserID: "user-1", Title: "T", DocType: models.DocTypeDocx,
			Sections: []services.CreateSectionRequest{{Title: ""}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateProject(context.Background(), &tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateProjectRollsBackOnSectionFailure(t *testing.T) {
	projects := &fakeProjectRepo{}
	sections := &fakeSectionRepo{createErr: errors.New("disk full")}
	svc := NewProjectService(projects, sections, &fakeTxManager{}, testLogger())

	_, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		UserID:  "user-1",
		Title:   "Doomed",
		DocType: models.DocTypeDocx,
		Sections: []services.CreateSectionRequest{
			{Title: "First"},
		},
	})
	if err == nil {
		t.Fatal("expected section create failure to surface")
	}
}

func TestGetProjectLoadsOrderedSections(t *testing.T) {
	projects, sections, svc := newProjectFixture()

	project := &models.Project{UserID: "user-1", Title: "Doc", DocType: models.DocTypeDocx}
	if err := projects.Create(context.Background(), project); err != nil {
		t.Fatal(err)
	}
	for _, s := range []models.Section{
		{ProjectID: project.ID, Title: "Second", Position: 1},
		{ProjectID: project.ID, Title: "First", Position: 0},
	} {
		sec := s
		if err := sections.Create(context.Background(), &sec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.GetProject(context.Background(), project.ID, "user-1")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if len(got.Sections) != 2 || got.Sections[0].Title != "First" || got.Sections[1].Title != "Second" {
		t.Errorf("sections not in position order: %+v", got.Sections)
	}

	if _, err := svc.GetProject(context.Background(), project.ID, "intruder"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign user err = %v, want ErrNotFound", err)
	}
}

func TestListProjectsScopedToUser(t *testing.T) {
	projects, _, svc := newProjectFixture()

	for _, p := range []models.Project{
		{UserID: "user-1", Title: "Mine", DocType: models.DocTypeDocx},
		{UserID: "user-2", Title: "Theirs", DocType: models.DocTypeDocx},
	} {
		proj := p
		if err := projects.Create(context.Background(), &proj); err != nil {
			t.Fatal(err)
		}
	}

	mine, err := svc.ListProjects(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Mine" {
		t.Errorf("ListProjects leaked across users: %+v", mine)
	}
}
