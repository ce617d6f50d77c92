package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/services"
)

type refinementFixture struct {
	projects    *fakeProjectRepo
	sections    *fakeSectionRepo
	refinements *fakeRefinementRepo
	gw          *fakeGateway
	svc         services.RefinementService
	section     *models.Section
}

func newRefinementFixture(t *testing.T) *refinementFixture {
	t.Helper()
	f := &refinementFixture{
		projects:    &fakeProjectRepo{},
		sections:    &fakeSectionRepo{},
		refinements: &fakeRefinementRepo{},
		gw:          &fakeGateway{},
	}
	f.svc = NewRefinementService(f.projects, f.sections, f.refinements, &fakeTxManager{}, f.gw, testLogger())

	project := &models.Project{UserID: "user-1", Title: "Doc", DocType: models.DocTypeDocx}
	if err := f.projects.Create(context.Background(), project); err != nil {
		t.Fatal(err)
	}
	section := &models.Section{ProjectID: project.ID, Title: "Summary", Content: "The original long draft."}
	if err := f.sections.Create(context.Background(), section); err != nil {
		t.Fatal(err)
	}
	f.section = section
	return f
}

func TestRefineUpdatesContentAndAppendsHistory(t *testing.T) {
	f := newRefinementFixture(t)
	f.gw.reply = "A shorter draft."

	ref, err := f.svc.Refine(context.Background(), f.section.ID, &services.RefineRequest{
		UserID: "user-1",
		Prompt: "shorten",
	})
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}

	if ref.NewContent != "A shorter draft." {
		t.Errorf("NewContent = %q", ref.NewContent)
	}

	stored, err := f.sections.GetByID(context.Background(), f.section.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Content != ref.NewContent {
		t.Errorf("section content = %q, want it to equal the refinement's new content %q",
			stored.Content, ref.NewContent)
	}

	history, err := f.svc.ListRefinements(context.Background(), f.section.ID, "user-1")
	if err != nil {
		t.Fatalf("ListRefinements: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].ID != ref.ID {
		t.Errorf("newest history entry = %s, want %s", history[0].ID, ref.ID)
	}

	// The gateway saw both the instructions and the current content.
	if len(f.gw.prompts) != 1 {
		t.Fatalf("gateway calls = %d, want 1", len(f.gw.prompts))
	}
	prompt := f.gw.prompts[0]
	if !strings.Contains(prompt, "Refine the following section content with instructions: shorten") {
		t.Errorf("prompt missing instructions: %q", prompt)
	}
	if !strings.Contains(prompt, "The original long draft.") {
		t.Errorf("prompt missing current content: %q", prompt)
	}
}

func TestRefineHistoryIsAppendOnly(t *testing.T) {
	f := newRefinementFixture(t)

	for _, instruction := range []string{"shorten", "expand", "formalize"} {
		if _, err := f.svc.Refine(context.Background(), f.section.ID, &services.RefineRequest{
			UserID: "user-1",
			Prompt: instruction,
		}); err != nil {
			t.Fatalf("Refine(%s): %v", instruction, err)
		}
	}

	history, err := f.svc.ListRefinements(context.Background(), f.section.ID, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[2].Prompt != "formalize" {
		t.Errorf("last entry prompt = %q, want the most recent refinement", history[2].Prompt)
	}

	stored, _ := f.sections.GetByID(context.Background(), f.section.ID)
	if stored.Content != history[2].NewContent {
		t.Error("live content does not track the latest refinement")
	}
}

func TestRefineFailures(t *testing.T) {
	f := newRefinementFixture(t)

	if _, err := f.svc.Refine(context.Background(), f.section.ID, &services.RefineRequest{UserID: "user-1"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty prompt err = %v, want ErrValidation", err)
	}
	if _, err := f.svc.Refine(context.Background(), "missing", &services.RefineRequest{UserID: "user-1", Prompt: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing section err = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.Refine(context.Background(), f.section.ID, &services.RefineRequest{UserID: "intruder", Prompt: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign user err = %v, want ErrNotFound", err)
	}

	// A failed transaction leaves both stores untouched.
	broken := NewRefinementService(f.projects, f.sections, f.refinements,
		&fakeTxManager{execErr: errors.New("deadlock")}, f.gw, testLogger())
	if _, err := broken.Refine(context.Background(), f.section.ID, &services.RefineRequest{UserID: "user-1", Prompt: "x"}); err == nil {
		t.Fatal("expected transaction error")
	}
	history, _ := f.refinements.ListBySection(context.Background(), f.section.ID)
	if len(history) != 0 {
		t.Errorf("history length after failed tx = %d, want 0", len(history))
	}
	stored, _ := f.sections.GetByID(context.Background(), f.section.ID)
	if stored.Content != "The original long draft." {
		t.Errorf("content changed despite failed tx: %q", stored.Content)
	}
}
