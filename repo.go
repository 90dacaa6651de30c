package tutorials

import (
	"context"
	"time"
)

// RepoStats summarizes a source code repository for the status table.
type RepoStats struct {
	Name       string    `json:"name"` // owner/name
	Language   string    `json:"language"`
	OpenIssues int       `json:"openIssues"`
	Watchers   int       `json:"watchers"`
	Stargazers int       `json:"stargazers"`
	Forks      int       `json:"forks"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RepoService retrieves repository statistics.
type RepoService interface {
	// FindRepo returns the statistics of owner/name.
	// Returns ENOTFOUND if the repository does not exist.
	FindRepo(ctx context.Context, owner, name string) (*RepoStats, error)
}
