package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents (
		user_id, name, type, file_path, file_size, mime_type, category,
		extracted_data, extract_status, extract_error, notes,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7,
		$8, $9, $10, $11,
		$12, $13
	) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		doc.UserID, doc.Name, doc.Type, doc.FilePath, doc.FileSize, doc.MimeType, doc.Category,
		doc.ExtractedData, doc.ExtractStatus, doc.ExtractError, doc.Notes,
		doc.CreatedAt, doc.UpdatedAt).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, userID, docID int64) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND user_id = $2", docID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByUser(ctx context.Context, userID int64, category domain.DocumentCategory, offset, limit int) ([]domain.Document, int, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}
	if category != "" {
		where += " AND category = $2"
		args = append(args, category)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByUser count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM documents %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var docs []domain.Document
	err = r.db.SelectContext(ctx, &docs, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByUser: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) UpdateExtraction(ctx context.Context, docID int64, status domain.ExtractStatus, data json.RawMessage, extractErr string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET
			extract_status = $1, extracted_data = $2, extract_error = $3, updated_at = $4
		 WHERE id = $5`,
		status, data, extractErr, time.Now().UTC(), docID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateExtraction: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) UpdateNotes(ctx context.Context, userID, docID int64, notes string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET notes = $1, updated_at = $2 WHERE id = $3 AND user_id = $4",
		notes, time.Now().UTC(), docID, userID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateNotes: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, userID, docID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = $1 AND user_id = $2", docID, userID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// ClaimQueued flips up to limit queued documents to running inside a single
// statement. SKIP LOCKED keeps concurrent workers from claiming the same row.
func (r *documentRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Document, error) {
	query := `UPDATE documents SET extract_status = $1, updated_at = $2
		WHERE id IN (
			SELECT id FROM documents
			WHERE extract_status = $3
			ORDER BY created_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`

	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs, query,
		domain.ExtractStatusRunning, time.Now().UTC(), domain.ExtractStatusQueued, limit)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ClaimQueued: %w", err)
	}
	return docs, nil
}
