package notes

import (
	"context"

	"github.com/dmitrijs2005/noteapp/internal/server/models"
)

// Repository is the note persistence contract: unconditional upsert, point
// lookup and partition query by user, partial title/content update, and
// delete. Update and Delete are silent no-ops when the key does not exist.
type Repository interface {
	Put(ctx context.Context, note *models.Note) error
	Get(ctx context.Context, userID, noteID string) (*models.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Note, error)
	UpdateContent(ctx context.Context, userID, noteID, title, content string) error
	Delete(ctx context.Context, userID, noteID string) error
}
