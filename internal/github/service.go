package github

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/cache"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

const (
	// searchPageSize is how many results one search fetch brings back.
	// Screens slice the list into display pages locally, so this is the
	// upper bound on what a screen can page through per query.
	searchPageSize = 50

	// trendingWindow is how far back the trending query looks.
	trendingWindow = 7 * 24 * time.Hour
)

// APIClient is the remote surface the service fetches through. Satisfied by
// *Client; tests substitute a fake to count network calls.
type APIClient interface {
	SearchUsers(ctx context.Context, query string, opts SearchOptions) ([]models.User, error)
	SearchRepositories(ctx context.Context, query string, opts SearchOptions) (*RepositorySearchResult, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	GetUserRepositories(ctx context.Context, username string, opts SearchOptions) ([]models.Repository, error)
	GetRepository(ctx context.Context, owner, name string) (*models.Repository, error)
	GetContributionCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error)
}

// Service is the single point of truth for GitHub data. Every read-by-key
// operation consults the response cache before the network; a valid hit is
// returned with no call. Concurrent fetches for the same key during a miss
// are not coalesced: both callers hit the network and the second write
// wins. Accepted simplification, the payloads are identical.
type Service struct {
	client    APIClient
	logger    *logrus.Logger
	cacheTTL  time.Duration
	cacheNow  cache.Clock
	users     *cache.Cache[[]models.User]
	repos     *cache.Cache[[]models.Repository]
	user      *cache.Cache[*models.User]
	repo      *cache.Cache[*models.Repository]
	calendars *cache.Cache[*models.ContributionCalendar]
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithAPIClient substitutes the remote client implementation
func WithAPIClient(client APIClient) ServiceOption {
	return func(s *Service) {
		s.client = client
	}
}

// WithCacheTTL overrides the cache entry lifetime
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// WithCacheClock injects the cache time source, used by tests
func WithCacheClock(now cache.Clock) ServiceOption {
	return func(s *Service) {
		s.cacheNow = now
	}
}

// NewService creates the gateway service with its own cache instances.
// Caches are constructor-scoped rather than package globals so tests can
// control the clock and key space.
func NewService(token string, logger *logrus.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		client:   NewClient(token, logger),
		logger:   logger,
		cacheTTL: cache.DefaultTTL,
		cacheNow: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.users = cache.New(cache.WithTTL[[]models.User](s.cacheTTL), cache.WithClock[[]models.User](s.cacheNow))
	s.repos = cache.New(cache.WithTTL[[]models.Repository](s.cacheTTL), cache.WithClock[[]models.Repository](s.cacheNow))
	s.user = cache.New(cache.WithTTL[*models.User](s.cacheTTL), cache.WithClock[*models.User](s.cacheNow))
	s.repo = cache.New(cache.WithTTL[*models.Repository](s.cacheTTL), cache.WithClock[*models.Repository](s.cacheNow))
	s.calendars = cache.New(cache.WithTTL[*models.ContributionCalendar](s.cacheTTL), cache.WithClock[*models.ContributionCalendar](s.cacheNow))

	return s
}

// SearchUsers searches accounts matching query, serving a fresh cached
// result when one exists.
func (s *Service) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	key := "search_users_" + query
	if users, ok := s.users.Get(key); ok {
		return users, nil
	}

	users, err := s.client.SearchUsers(ctx, query, SearchOptions{PerPage: searchPageSize})
	if err != nil {
		return nil, err
	}

	s.users.Put(key, users)
	return users, nil
}

// SearchRepositories searches repositories matching query, serving a fresh
// cached result when one exists.
func (s *Service) SearchRepositories(ctx context.Context, query string) ([]models.Repository, error) {
	key := "search_repos_" + query
	if repos, ok := s.repos.Get(key); ok {
		return repos, nil
	}

	result, err := s.client.SearchRepositories(ctx, query, SearchOptions{
		Sort:    "stars",
		Order:   "desc",
		PerPage: searchPageSize,
	})
	if err != nil {
		return nil, err
	}

	s.repos.Put(key, result.Items)
	return result.Items, nil
}

// SearchRepositoriesWithCount searches repositories and returns the full
// payload including the aggregate total. Bypasses the cache: it backs live
// statistics where freshness matters more than latency.
func (s *Service) SearchRepositoriesWithCount(ctx context.Context, query string) (*RepositorySearchResult, error) {
	return s.client.SearchRepositories(ctx, query, SearchOptions{PerPage: 1})
}

// GetUserDetails fetches one account profile, serving a fresh cached result
// when one exists.
func (s *Service) GetUserDetails(ctx context.Context, username string) (*models.User, error) {
	key := "user_" + username
	if user, ok := s.user.Get(key); ok {
		return user, nil
	}

	user, err := s.client.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	s.user.Put(key, user)
	return user, nil
}

// GetUserRepositories lists the repositories owned by username, serving a
// fresh cached result when one exists.
func (s *Service) GetUserRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	key := "user_repos_" + username
	if repos, ok := s.repos.Get(key); ok {
		return repos, nil
	}

	repos, err := s.client.GetUserRepositories(ctx, username, SearchOptions{
		Sort:    "updated",
		PerPage: searchPageSize,
	})
	if err != nil {
		return nil, err
	}

	s.repos.Put(key, repos)
	return repos, nil
}

// GetRepository fetches one repository, serving a fresh cached result when
// one exists.
func (s *Service) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	key := "repo_" + owner + "/" + name
	if repo, ok := s.repo.Get(key); ok {
		return repo, nil
	}

	repo, err := s.client.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	s.repo.Put(key, repo)
	return repo, nil
}

// GetContributionCalendar fetches the contribution calendar for username,
// serving a fresh cached result when one exists.
func (s *Service) GetContributionCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error) {
	key := "calendar_" + username
	if calendar, ok := s.calendars.Get(key); ok {
		return calendar, nil
	}

	calendar, err := s.client.GetContributionCalendar(ctx, username)
	if err != nil {
		return nil, err
	}

	s.calendars.Put(key, calendar)
	return calendar, nil
}

// GetTrendingRepositories lists repositories created within the last week
// with the most stars, optionally restricted to one language. Cached like
// the other read-by-key operations.
func (s *Service) GetTrendingRepositories(ctx context.Context, language string) ([]models.Repository, error) {
	key := "trending_" + language
	if repos, ok := s.repos.Get(key); ok {
		return repos, nil
	}

	since := time.Now().Add(-trendingWindow).Format("2006-01-02")
	query := fmt.Sprintf("created:>%s", since)
	if language != "" {
		query = fmt.Sprintf("language:%s %s", language, query)
	}

	result, err := s.client.SearchRepositories(ctx, query, SearchOptions{
		Sort:    "stars",
		Order:   "desc",
		PerPage: searchPageSize,
	})
	if err != nil {
		return nil, err
	}

	s.repos.Put(key, result.Items)
	return result.Items, nil
}
