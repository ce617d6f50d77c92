package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"draftdeck/internal/domain/models"
)

// readPart extracts a single file from a zipped package.
func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return buf.String()
	}
	t.Fatalf("package is missing part %s", name)
	return ""
}

type docxParagraph struct {
	Style struct {
		Val string `xml:"val,attr"`
	} `xml:"pPr>pStyle"`
	Runs []struct {
		Texts []string `xml:"t"`
	} `xml:"r"`
}

func (p docxParagraph) text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Texts {
			b.WriteString(t)
		}
	}
	return b.String()
}

type docxDocument struct {
	Paragraphs []docxParagraph `xml:"body>p"`
}

func parseDocx(t *testing.T, data []byte) docxDocument {
	t.Helper()
	var doc docxDocument
	if err := xml.Unmarshal([]byte(readPart(t, data, "word/document.xml")), &doc); err != nil {
		t.Fatalf("parse document.xml: %v", err)
	}
	return doc
}

func TestDOCXStructure(t *testing.T) {
	prompt := "annual results for investors"
	project := &models.Project{
		Title:   "Quarterly Report",
		DocType: models.DocTypeDocx,
		Prompt:  &prompt,
	}
	sections := []models.Section{
		{Title: "Introduction", Content: "Opening remarks.", Position: 0},
		{Title: "Risks", Content: "Line one.\nLine two.", Position: 1},
	}

	data, err := DOCX(project, sections)
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	doc := parseDocx(t, data)

	var h1, h2 []string
	for _, p := range doc.Paragraphs {
		switch p.Style.Val {
		case "Heading1":
			h1 = append(h1, p.text())
		case "Heading2":
			h2 = append(h2, p.text())
		}
	}

	if len(h1) != 1 || h1[0] != "Quarterly Report" {
		t.Errorf("top-level headings = %q, want exactly [Quarterly Report]", h1)
	}
	if len(h2) != 2 || h2[0] != "Introduction" || h2[1] != "Risks" {
		t.Errorf("subheadings = %q, want [Introduction Risks] in order", h2)
	}

	var texts []string
	for _, p := range doc.Paragraphs {
		texts = append(texts, p.text())
	}
	joined := strings.Join(texts, "\n")
	if !strings.Contains(joined, "Prompt: annual results for investors") {
		t.Errorf("document does not echo the project brief:\n%s", joined)
	}
	if !strings.Contains(joined, "Line one.Line two.") {
		t.Errorf("multi-line content missing from document:\n%s", joined)
	}
}

func TestDOCXEscapesMarkup(t *testing.T) {
	project := &models.Project{Title: "Q&A <Session>", DocType: models.DocTypeDocx}
	sections := []models.Section{{Title: "A & B", Content: "1 < 2"}}

	data, err := DOCX(project, sections)
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	doc := parseDocx(t, data)
	if got := doc.Paragraphs[0].text(); got != "Q&A <Session>" {
		t.Errorf("title = %q, want %q", got, "Q&A <Session>")
	}

	raw := readPart(t, data, "word/document.xml")
	if strings.Contains(raw, "Q&A") {
		t.Error("unescaped ampersand in document.xml")
	}
}

func TestDOCXEmptySections(t *testing.T) {
	project := &models.Project{Title: "Empty", DocType: models.DocTypeDocx}

	data, err := DOCX(project, nil)
	if err != nil {
		t.Fatalf("DOCX: %v", err)
	}

	doc := parseDocx(t, data)
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("paragraph count = %d, want 1 (title only)", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].text() != "Empty" {
		t.Errorf("title paragraph = %q", doc.Paragraphs[0].text())
	}
}
