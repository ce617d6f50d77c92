package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
)

// PostgresRefinementRepository implements the RefinementRepository
// interface. The refinements table is append-only: there is intentionally
// no UPDATE or DELETE path.
type PostgresRefinementRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewRefinementRepository creates a new refinement repository
func NewRefinementRepository(config *RepositoryConfig) repositories.RefinementRepository {
	return &PostgresRefinementRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create appends a refinement to a section's history
func (r *PostgresRefinementRepository) Create(ctx context.Context, refinement *models.Refinement) error {
	if refinement.ID == "" {
		refinement.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, user_id, prompt, new_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, r.tables.Refinements)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		refinement.ID,
		refinement.SectionID,
		refinement.UserID,
		refinement.Prompt,
		refinement.NewContent,
		refinement.CreatedAt,
	).Scan(&refinement.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", refinement.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("create refinement: %w", err)
	}

	return nil
}

// ListBySection retrieves a section's history in chronological order
func (r *PostgresRefinementRepository) ListBySection(ctx context.Context, sectionID string) ([]models.Refinement, error) {
	query := fmt.Sprintf(`
		SELECT id, section_id, user_id, prompt, new_content, created_at
		FROM %s
		WHERE section_id = $1
		ORDER BY created_at ASC
	`, r.tables.Refinements)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list refinements: %w", err)
	}
	defer rows.Close()

	var refinements []models.Refinement
	for rows.Next() {
		var refinement models.Refinement
		err := rows.Scan(
			&refinement.ID,
			&refinement.SectionID,
			&refinement.UserID,
			&refinement.Prompt,
			&refinement.NewContent,
			&refinement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan refinement: %w", err)
		}
		refinements = append(refinements, refinement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refinements: %w", err)
	}

	if refinements == nil {
		refinements = []models.Refinement{}
	}

	return refinements, nil
}
