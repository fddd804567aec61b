package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/noteapp/internal/server/repositories/notes"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Notes() notes.Repository
}
