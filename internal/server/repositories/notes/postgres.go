// Package notes provides the PostgreSQL-backed repository for note records.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/noteapp/internal/common"
	"github.com/dmitrijs2005/noteapp/internal/dbx"
	"github.com/dmitrijs2005/noteapp/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Put upserts a note by (user_id, note_id). Freshly generated note IDs make
// the conflict branch unreachable in practice, but the write stays
// unconditional to match the store contract.
func (r *PostgresRepository) Put(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (user_id, note_id, title, content, image_url, image_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, note_id)
		DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			image_url = EXCLUDED.image_url,
			image_key = EXCLUDED.image_key,
			created_at = EXCLUDED.created_at;
	`
	_, err := r.db.ExecContext(ctx, query,
		note.UserID, note.NoteID, note.Title, note.Content, note.ImageURL, note.ImageKey, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the note with the given key or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID, noteID string) (*models.Note, error) {
	query := `SELECT user_id, note_id, title, content, image_url, image_key, created_at FROM notes
		WHERE user_id=$1 AND note_id=$2`

	var item models.Note
	err := r.db.QueryRowContext(ctx, query, userID, noteID).Scan(
		&item.UserID, &item.NoteID, &item.Title, &item.Content,
		&item.ImageURL, &item.ImageKey, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}

// ListByUser returns all notes in the user's partition, ordered by note ID.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `SELECT user_id, note_id, title, content, image_url, image_key, created_at FROM notes
		WHERE user_id=$1
		ORDER BY note_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(
			&item.UserID, &item.NoteID, &item.Title, &item.Content,
			&item.ImageURL, &item.ImageKey, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateContent sets title and content only; image_url and created_at are
// never touched. A missing key affects zero rows and is not an error.
func (r *PostgresRepository) UpdateContent(ctx context.Context, userID, noteID, title, content string) error {
	query := `UPDATE notes SET title=$1, content=$2 WHERE user_id=$3 AND note_id=$4`

	_, err := r.db.ExecContext(ctx, query, title, content, userID, noteID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the note; deleting a missing key is a no-op.
func (r *PostgresRepository) Delete(ctx context.Context, userID, noteID string) error {
	query := `DELETE FROM notes WHERE user_id=$1 AND note_id=$2`

	_, err := r.db.ExecContext(ctx, query, userID, noteID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
