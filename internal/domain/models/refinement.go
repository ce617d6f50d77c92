package models

import (
	"time"
)

// Refinement is one entry in a section's append-only edit history. Entries
// are never updated or deleted; each new refinement becomes the section's
// live content at the moment it is recorded.
type Refinement struct {
	ID         string    `json:"id" db:"id"`
	SectionID  string    `json:"section_id" db:"section_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Prompt     string    `json:"prompt" db:"prompt"`
	NewContent string    `json:"new_content" db:"new_content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
