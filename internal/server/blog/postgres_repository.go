package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vrajdev/sadhana-backend/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *Post) (*Post, error) {

	query :=
		`INSERT INTO posts (title, body, author)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Body, post.Author).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Post, error) {
	query :=
		`SELECT id, title, body, author, created_at FROM posts
		 WHERE id = $1
		 `

	post := &Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.Title, &post.Body, &post.Author, &post.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Post, error) {
	query :=
		`SELECT id, title, body, author, created_at FROM posts
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		post := &Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.Author, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("error performing sql request: %v", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return posts, nil
}
