// Package http provides a GitHub REST API implementation of
// tutorials.RepoService.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/tutorials"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"

	// DefaultTimeout is the default timeout for HTTP requests.
	DefaultTimeout = 10 * time.Second

	// DefaultRPS is the default request rate. Unauthenticated GitHub
	// clients get 60 requests per hour, so keep bursts polite.
	DefaultRPS = 1.0
)

// Ensure RepoService implements tutorials.RepoService at compile time.
var _ tutorials.RepoService = (*RepoService)(nil)

// RepoService retrieves repository statistics from the GitHub REST API.
// Requests are rate limited and transient failures are retried.
type RepoService struct {
	client      *http.Client
	baseURL     string
	token       string
	timeout     time.Duration
	limiter     *rate.Limiter
	retryDelays []time.Duration
}

// Option configures a RepoService.
type Option func(*RepoService)

// WithBaseURL overrides the API root, e.g. for GitHub Enterprise or tests.
func WithBaseURL(u string) Option {
	return func(s *RepoService) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithToken sends the token as a bearer credential.
func WithToken(token string) Option {
	return func(s *RepoService) {
		s.token = token
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *RepoService) {
		s.timeout = d
	}
}

// WithRateLimit limits requests to rps per second.
func WithRateLimit(rps float64) Option {
	return func(s *RepoService) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff delays between attempts.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *RepoService) {
		s.retryDelays = delays
	}
}

// NewRepoService creates a new RepoService.
func NewRepoService(opts ...Option) *RepoService {
	s := &RepoService{
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRPS), 1),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// repoResponse is the subset of the GitHub repository resource we read.
type repoResponse struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Language        string    `json:"language"`
	OpenIssuesCount int       `json:"open_issues_count"`
	WatchersCount   int       `json:"watchers_count"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FindRepo returns the statistics of owner/name.
func (s *RepoService) FindRepo(ctx context.Context, owner, name string) (*tutorials.RepoStats, error) {
	if owner == "" || name == "" {
		return nil, tutorials.Errorf(tutorials.EINVALID, "repository owner and name required")
	}

	endpoint := s.baseURL + "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name)

	var repo repoResponse
	err := withRetry(ctx, s.retryDelays, func() error {
		return s.get(ctx, endpoint, &repo)
	})
	if err != nil {
		return nil, err
	}

	fullName := repo.FullName
	if fullName == "" {
		fullName = owner + "/" + repo.Name
	}

	return &tutorials.RepoStats{
		Name:       fullName,
		Language:   repo.Language,
		OpenIssues: repo.OpenIssuesCount,
		Watchers:   repo.WatchersCount,
		Stargazers: repo.StargazersCount,
		Forks:      repo.ForksCount,
		CreatedAt:  repo.CreatedAt,
		UpdatedAt:  repo.UpdatedAt,
	}, nil
}

// get performs a single rate-limited GET and decodes the JSON body into v.
func (s *RepoService) get(ctx context.Context, endpoint string, v any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &transientError{err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return tutorials.Errorf(tutorials.ENOTFOUND, "repository not found")
	case resp.StatusCode >= 500:
		return &transientError{err: fmt.Errorf("HTTP %d for %s", resp.StatusCode, endpoint)}
	default:
		return tutorials.Errorf(tutorials.EINTERNAL, "HTTP %d for %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
