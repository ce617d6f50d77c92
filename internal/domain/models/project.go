package models

import (
	"time"
)

// DocType is the output format of a project. It is fixed at creation and
// determines both the exporter branch and the default section kind.
type DocType string

const (
	DocTypeDocx DocType = "docx"
	DocTypePptx DocType = "pptx"
)

// Valid reports whether the doc type is one of the supported formats.
func (d DocType) Valid() bool {
	return d == DocTypeDocx || d == DocTypePptx
}

// SlideByDefault reports whether new sections of this doc type render as
// slides rather than heading+paragraph blocks.
func (d DocType) SlideByDefault() bool {
	return d == DocTypePptx
}

type Project struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	DocType   DocType   `json:"doc_type" db:"doc_type"`
	Prompt    *string   `json:"prompt,omitempty" db:"prompt"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Sections is populated by read paths that load the full project,
	// ordered by position (ties broken by insertion order).
	Sections []Section `json:"sections,omitempty" db:"-"`
}

// Brief returns the document-level prompt, or "" when none was given.
func (p *Project) Brief() string {
	if p.Prompt == nil {
		return ""
	}
	return *p.Prompt
}
