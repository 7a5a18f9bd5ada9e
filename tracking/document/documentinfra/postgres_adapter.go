package documentinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/tracking/document"
	"github.com/Abraxas-365/chamba/tracking/process"
)

// PostgresDocumentRepository implements document.Repository using PostgreSQL
type PostgresDocumentRepository struct {
	db *sqlx.DB
}

// NewPostgresDocumentRepository creates a new PostgreSQL document repository
func NewPostgresDocumentRepository(db *sqlx.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{
		db: db,
	}
}

type documentModel struct {
	ID              string    `db:"id"`
	HiringProcessID string    `db:"hiring_process_id"`
	FileName        string    `db:"file_name"`
	ContentType     string    `db:"content_type"`
	SizeBytes       int64     `db:"size_bytes"`
	StoragePath     string    `db:"storage_path"`
	UploadedAt      time.Time `db:"uploaded_at"`
}

func (m *documentModel) toEntity() *document.Document {
	return &document.Document{
		ID:              kernel.DocumentID(m.ID),
		HiringProcessID: kernel.ProcessID(m.HiringProcessID),
		FileName:        m.FileName,
		ContentType:     m.ContentType,
		SizeBytes:       m.SizeBytes,
		StoragePath:     kernel.StoragePath(m.StoragePath),
		UploadedAt:      m.UploadedAt,
	}
}

// Create inserts a metadata row, checking the parent in the same
// statement like the interaction insert does
func (r *PostgresDocumentRepository) Create(ctx context.Context, userID kernel.UserID, doc *document.Document) error {
	query := `
		INSERT INTO documents (
			id, hiring_process_id, file_name, content_type, size_bytes,
			storage_path, uploaded_at
		)
		SELECT $1, p.id, $2, $3, $4, $5, $6
		FROM hiring_processes p
		WHERE p.id = $7 AND p.user_id = $8 AND p.deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query,
		string(doc.ID),
		doc.FileName,
		doc.ContentType,
		doc.SizeBytes,
		string(doc.StoragePath),
		doc.UploadedAt,
		string(doc.HiringProcessID),
		string(userID),
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
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

// GetByID retrieves one document, joining the parent for ownership
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id kernel.DocumentID, processID kernel.ProcessID, userID kernel.UserID) (*document.Document, error) {
	query := `
		SELECT
			d.id, d.hiring_process_id, d.file_name, d.content_type,
			d.size_bytes, d.storage_path, d.uploaded_at
		FROM documents d
		INNER JOIN hiring_processes p ON p.id = d.hiring_process_id
		WHERE d.id = $1
		  AND d.hiring_process_id = $2
		  AND p.user_id = $3
		  AND p.deleted_at IS NULL
	`

	var model documentModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(processID), string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrDocumentNotFound()
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListByProcess retrieves all documents of a process, newest first
func (r *PostgresDocumentRepository) ListByProcess(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) ([]document.Document, error) {
	query := `
		SELECT
			d.id, d.hiring_process_id, d.file_name, d.content_type,
			d.size_bytes, d.storage_path, d.uploaded_at
		FROM documents d
		INNER JOIN hiring_processes p ON p.id = d.hiring_process_id
		WHERE d.hiring_process_id = $1
		  AND p.user_id = $2
		  AND p.deleted_at IS NULL
		ORDER BY d.uploaded_at DESC
	`

	var models []documentModel
	if err := r.db.SelectContext(ctx, &models, query, string(processID), string(userID)); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]document.Document, 0, len(models))
	for _, model := range models {
		docs = append(docs, *model.toEntity())
	}

	return docs, nil
}

// Delete removes the metadata row and returns it for storage cleanup
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id kernel.DocumentID, processID kernel.ProcessID, userID kernel.UserID) (*document.Document, error) {
	query := `
		DELETE FROM documents d
		USING hiring_processes p
		WHERE p.id = d.hiring_process_id
		  AND d.id = $1
		  AND d.hiring_process_id = $2
		  AND p.user_id = $3
		  AND p.deleted_at IS NULL
		RETURNING
			d.id, d.hiring_process_id, d.file_name, d.content_type,
			d.size_bytes, d.storage_path, d.uploaded_at
	`

	var model documentModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(processID), string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrDocumentNotFound()
		}
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return model.toEntity(), nil
}
