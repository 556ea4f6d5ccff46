package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/vrajdev/sadhana-backend/internal/server/blog"
	"github.com/vrajdev/sadhana-backend/internal/server/migrations"
)

type PostgresRepositoryManager struct {
	db    *sql.DB
	posts blog.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Posts() blog.Repository {
	return m.posts
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	posts, err := blog.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("post repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:    db,
		posts: posts,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
