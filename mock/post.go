package mock

import (
	"context"

	"github.com/fwojciec/tutorials"
)

var _ tutorials.PostService = (*PostService)(nil)

// PostService is a mock implementation of tutorials.PostService.
type PostService struct {
	UpsertPostFn     func(ctx context.Context, post *tutorials.Post) error
	FindPostByIDFn   func(ctx context.Context, id string) (*tutorials.Post, error)
	FindPostBySlugFn func(ctx context.Context, slug string) (*tutorials.Post, error)
	FindPostsFn      func(ctx context.Context, filter tutorials.PostFilter) ([]*tutorials.Post, error)
	KeywordsFn       func(ctx context.Context) ([]string, error)
	DeletePostFn     func(ctx context.Context, id string) error
}

func (s *PostService) UpsertPost(ctx context.Context, post *tutorials.Post) error {
	return s.UpsertPostFn(ctx, post)
}

func (s *PostService) FindPostByID(ctx context.Context, id string) (*tutorials.Post, error) {
	return s.FindPostByIDFn(ctx, id)
}

func (s *PostService) FindPostBySlug(ctx context.Context, slug string) (*tutorials.Post, error) {
	return s.FindPostBySlugFn(ctx, slug)
}

func (s *PostService) FindPosts(ctx context.Context, filter tutorials.PostFilter) ([]*tutorials.Post, error) {
	return s.FindPostsFn(ctx, filter)
}

func (s *PostService) Keywords(ctx context.Context) ([]string, error) {
	return s.KeywordsFn(ctx)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.DeletePostFn(ctx, id)
}
