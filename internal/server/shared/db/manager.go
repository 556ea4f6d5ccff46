package db

import (
	"context"
	"database/sql"

	"github.com/vrajdev/sadhana-backend/internal/server/blog"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Posts() blog.Repository
}
