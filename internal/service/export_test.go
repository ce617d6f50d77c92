package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/export"
)

func TestExportPicksFormatFromDocType(t *testing.T) {
	projects := &fakeProjectRepo{}
	sections := &fakeSectionRepo{}
	svc := NewExportService(projects, sections, testLogger())

	tests := []struct {
		docType   models.DocType
		wantExt   string
		wantMedia string
	}{
		{models.DocTypeDocx, ".docx", export.MediaTypeDocx},
		{models.DocTypePptx, ".pptx", export.MediaTypePptx},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType), func(t *testing.T) {
			project := &models.Project{UserID: "user-1", Title: "Doc", DocType: tt.docType}
			if err := projects.Create(context.Background(), project); err != nil {
				t.Fatal(err)
			}
			sec := models.Section{ProjectID: project.ID, Title: "Only", Content: "Body."}
			if err := sections.Create(context.Background(), &sec); err != nil {
				t.Fatal(err)
			}

			result, err := svc.Export(context.Background(), project.ID, "user-1")
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if result.MediaType != tt.wantMedia {
				t.Errorf("media type = %q, want %q", result.MediaType, tt.wantMedia)
			}
			if want := "project_" + project.ID + tt.wantExt; result.Filename != want {
				t.Errorf("filename = %q, want %q", result.Filename, want)
			}
			// Both formats are zip packages.
			if !bytes.HasPrefix(result.Data, []byte("PK")) {
				t.Error("artifact is not a zip package")
			}
		})
	}
}

func TestExportOwnership(t *testing.T) {
	projects := &fakeProjectRepo{}
	svc := NewExportService(projects, &fakeSectionRepo{}, testLogger())

	project := &models.Project{UserID: "user-1", Title: "Doc", DocType: models.DocTypeDocx}
	if err := projects.Create(context.Background(), project); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Export(context.Background(), project.ID, "intruder"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign user err = %v, want ErrNotFound", err)
	}
}
