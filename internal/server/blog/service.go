// Package blog stores and serves blog posts from the relational database.
package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/vrajdev/sadhana-backend/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new post. The HTTP layer restricts this operation to
// privileged accounts; author is the creator's email.
func (s *Service) Create(ctx context.Context, title string, body string, author string) (*Post, error) {

	if title == "" || body == "" {
		return nil, common.ErrorValidation
	}

	post, err := s.repo.Create(ctx, &Post{Title: title, Body: body, Author: author})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %v", err)
	}

	return post, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return post, nil
}

func (s *Service) List(ctx context.Context) ([]*Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if posts == nil {
		posts = []*Post{}
	}
	return posts, nil
}
