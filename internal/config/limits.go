package config

const (
	// MaxProjectTitleLength is the maximum length for project titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and keep titles
	// short and descriptive.
	MaxProjectTitleLength = 255

	// MaxSectionTitleLength is the maximum length for section titles.
	// Same bound as project titles for consistency.
	MaxSectionTitleLength = 255

	// MaxCommentLength bounds comment text. Comments are short review
	// notes, not documents.
	MaxCommentLength = 2000
)
