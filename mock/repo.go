package mock

import (
	"context"

	"github.com/fwojciec/tutorials"
)

var _ tutorials.RepoService = (*RepoService)(nil)

// RepoService is a mock implementation of tutorials.RepoService.
type RepoService struct {
	FindRepoFn func(ctx context.Context, owner, name string) (*tutorials.RepoStats, error)
}

func (s *RepoService) FindRepo(ctx context.Context, owner, name string) (*tutorials.RepoStats, error) {
	return s.FindRepoFn(ctx, owner, name)
}
