package services

import (
	"context"
)

// ExportResult is a rendered binary artifact ready to be served as an
// attachment.
type ExportResult struct {
	Filename  string
	MediaType string
	Data      []byte
}

// ExportService renders a project and its ordered sections into the binary
// office format fixed by the project's doc type.
type ExportService interface {
	Export(ctx context.Context, projectID, userID string) (*ExportResult, error)
}
