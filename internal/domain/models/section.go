package models

import (
	"time"
)

// Section is an ordered structural unit of a project: a heading+body block
// in a docx project, or a slide in a pptx project. Content starts empty and
// always reflects the most recent generation or refinement result.
type Section struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Position  int       `json:"position" db:"position"`
	IsSlide   bool      `json:"is_slide" db:"is_slide"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
