package interactioninfra

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/tracking/interaction"
	"github.com/Abraxas-365/chamba/tracking/process"
)

// PostgresInteractionRepository implements interaction.Repository using PostgreSQL
type PostgresInteractionRepository struct {
	db *sqlx.DB
}

// NewPostgresInteractionRepository creates a new PostgreSQL interaction repository
func NewPostgresInteractionRepository(db *sqlx.DB) *PostgresInteractionRepository {
	return &PostgresInteractionRepository{
		db: db,
	}
}

type interactionModel struct {
	ID              string    `db:"id"`
	HiringProcessID string    `db:"hiring_process_id"`
	Type            string    `db:"type"`
	Title           *string   `db:"title"`
	Content         string    `db:"content"`
	OccurredAt      time.Time `db:"occurred_at"`
	CreatedAt       time.Time `db:"created_at"`
}

func (m *interactionModel) toEntity() *interaction.Interaction {
	return &interaction.Interaction{
		ID:              kernel.InteractionID(m.ID),
		HiringProcessID: kernel.ProcessID(m.HiringProcessID),
		Type:            interaction.InteractionType(m.Type),
		Title:           m.Title,
		Content:         m.Content,
		OccurredAt:      m.OccurredAt,
		CreatedAt:       m.CreatedAt,
	}
}

// Create inserts an interaction. The INSERT selects from the parent
// process so existence, ownership and liveness are checked in the same
// statement that writes.
func (r *PostgresInteractionRepository) Create(ctx context.Context, userID kernel.UserID, entry *interaction.Interaction) error {
	query := `
		INSERT INTO interactions (
			id, hiring_process_id, type, title, content, occurred_at, created_at
		)
		SELECT $1, p.id, $2, $3, $4, $5, $6
		FROM hiring_processes p
		WHERE p.id = $7 AND p.user_id = $8 AND p.deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		string(entry.ID),
		string(entry.Type),
		entry.Title,
		entry.Content,
		entry.OccurredAt,
		entry.CreatedAt,
		string(entry.HiringProcessID),
		string(userID),
	)
	if err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return process.ErrProcessNotFound()
	}

	return nil
}

// GetByID retrieves one interaction, joining the parent for ownership
func (r *PostgresInteractionRepository) GetByID(ctx context.Context, id kernel.InteractionID, processID kernel.ProcessID, userID kernel.UserID) (*interaction.Interaction, error) {
	query := `
		SELECT
			i.id, i.hiring_process_id, i.type, i.title, i.content,
			i.occurred_at, i.created_at
		FROM interactions i
		INNER JOIN hiring_processes p ON p.id = i.hiring_process_id
		WHERE i.id = $1
		  AND i.hiring_process_id = $2
		  AND p.user_id = $3
		  AND p.deleted_at IS NULL
	`

	var model interactionModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(processID), string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interaction.ErrInteractionNotFound()
		}
		return nil, fmt.Errorf("failed to get interaction by id: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves a page of a process's interactions, most recent
// first. Count and page queries run concurrently like the process
// listing does.
func (r *PostgresInteractionRepository) List(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[interaction.Interaction], error) {
	pagination = pagination.Normalized()

	// The endpoint contract is 404 for an unknown parent, not an
	// empty page; resolve the parent first.
	var parentExists bool
	parentQuery := `
		SELECT EXISTS(
			SELECT 1 FROM hiring_processes
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		)
	`
	if err := r.db.GetContext(ctx, &parentExists, parentQuery, string(processID), string(userID)); err != nil {
		return nil, fmt.Errorf("failed to check hiring process existence: %w", err)
	}
	if !parentExists {
		return nil, process.ErrProcessNotFound()
	}

	countQuery := `
		SELECT COUNT(*)
		FROM interactions i
		INNER JOIN hiring_processes p ON p.id = i.hiring_process_id
		WHERE i.hiring_process_id = $1 AND p.user_id = $2 AND p.deleted_at IS NULL
	`

	pageQuery := `
		SELECT
			i.id, i.hiring_process_id, i.type, i.title, i.content,
			i.occurred_at, i.created_at
		FROM interactions i
		INNER JOIN hiring_processes p ON p.id = i.hiring_process_id
		WHERE i.hiring_process_id = $1 AND p.user_id = $2 AND p.deleted_at IS NULL
		ORDER BY i.occurred_at DESC, i.created_at DESC
		LIMIT $3 OFFSET $4
	`

	var (
		wg       sync.WaitGroup
		total    int
		models   []interactionModel
		countErr error
		pageErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		countErr = r.db.GetContext(ctx, &total, countQuery, string(processID), string(userID))
	}()
	go func() {
		defer wg.Done()
		pageErr = r.db.SelectContext(ctx, &models, pageQuery,
			string(processID), string(userID), pagination.PageSize, pagination.Offset())
	}()
	wg.Wait()

	if countErr != nil {
		return nil, fmt.Errorf("failed to count interactions: %w", countErr)
	}
	if pageErr != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", pageErr)
	}

	entities := make([]interaction.Interaction, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[interaction.Interaction]{
		Items: entities,
		Page:  kernel.NewPage(pagination.Page, pagination.PageSize, total),
		Empty: len(entities) == 0,
	}, nil
}

// Delete removes an interaction permanently. Interactions have no
// soft-delete; a second delete is not-found.
func (r *PostgresInteractionRepository) Delete(ctx context.Context, id kernel.InteractionID, processID kernel.ProcessID, userID kernel.UserID) error {
	query := `
		DELETE FROM interactions i
		USING hiring_processes p
		WHERE p.id = i.hiring_process_id
		  AND i.id = $1
		  AND i.hiring_process_id = $2
		  AND p.user_id = $3
		  AND p.deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, string(id), string(processID), string(userID))
	if err != nil {
		return fmt.Errorf("failed to delete interaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return interaction.ErrInteractionNotFound()
	}

	return nil
}
