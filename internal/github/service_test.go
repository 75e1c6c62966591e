package github

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// fakeClient counts calls per method so tests can assert exactly when the
// service reaches for the network.
type fakeClient struct {
	searchUserCalls  int
	searchRepoCalls  int
	getUserCalls     int
	getUserRepoCalls int
	getRepoCalls     int
	calendarCalls    int

	err error
}

func (f *fakeClient) SearchUsers(ctx context.Context, query string, opts SearchOptions) ([]models.User, error) {
	f.searchUserCalls++
	if f.err != nil {
		return nil, f.err
	}
	return []models.User{{ID: 1, Login: query}}, nil
}

func (f *fakeClient) SearchRepositories(ctx context.Context, query string, opts SearchOptions) (*RepositorySearchResult, error) {
	f.searchRepoCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &RepositorySearchResult{
		TotalCount: 1,
		Items:      []models.Repository{{ID: 1, FullName: "owner/" + query}},
	}, nil
}

func (f *fakeClient) GetUser(ctx context.Context, username string) (*models.User, error) {
	f.getUserCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: 1, Login: username}, nil
}

func (f *fakeClient) GetUserRepositories(ctx context.Context, username string, opts SearchOptions) ([]models.Repository, error) {
	f.getUserRepoCalls++
	if f.err != nil {
		return nil, f.err
	}
	return []models.Repository{{ID: 1, Name: "repo"}}, nil
}

func (f *fakeClient) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	f.getRepoCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.Repository{ID: 1, FullName: owner + "/" + name}, nil
}

func (f *fakeClient) GetContributionCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error) {
	f.calendarCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.ContributionCalendar{TotalContributions: 42}, nil
}

func setupTestService(t *testing.T) (*Service, *fakeClient, *time.Time) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	client := &fakeClient{}
	svc := NewService("", logger,
		WithAPIClient(client),
		WithCacheClock(func() time.Time { return now }),
	)
	return svc, client, &now
}

func TestService_CacheFreshness(t *testing.T) {
	svc, client, now := setupTestService(t)
	ctx := context.Background()

	first, err := svc.GetUserDetails(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, client.getUserCalls)

	// One millisecond inside the TTL: identical payload, no network call.
	*now = now.Add(5*time.Minute - time.Millisecond)
	second, err := svc.GetUserDetails(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, client.getUserCalls)
	assert.Same(t, first, second)

	// One millisecond past the TTL: a new call fires.
	*now = now.Add(2 * time.Millisecond)
	_, err = svc.GetUserDetails(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, 2, client.getUserCalls)
}

func TestService_SearchRepositoriesCached(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.SearchRepositories(ctx, "react")
	require.NoError(t, err)
	_, err = svc.SearchRepositories(ctx, "react")
	require.NoError(t, err)
	assert.Equal(t, 1, client.searchRepoCalls)

	// A different query is a different key.
	_, err = svc.SearchRepositories(ctx, "vue")
	require.NoError(t, err)
	assert.Equal(t, 2, client.searchRepoCalls)
}

func TestService_SearchUsersCached(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.SearchUsers(ctx, "tom")
	require.NoError(t, err)
	_, err = svc.SearchUsers(ctx, "tom")
	require.NoError(t, err)
	assert.Equal(t, 1, client.searchUserCalls)
}

func TestService_WithCountBypassesCache(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := svc.SearchRepositoriesWithCount(ctx, "language:Go")
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCount)
	}
	assert.Equal(t, 3, client.searchRepoCalls)
}

func TestService_ErrorNotCached(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	client.err = assert.AnError
	_, err := svc.GetRepository(ctx, "facebook", "react")
	require.Error(t, err)

	// The failure was not stored; the next call retries the network.
	client.err = nil
	repo, err := svc.GetRepository(ctx, "facebook", "react")
	require.NoError(t, err)
	assert.Equal(t, "facebook/react", repo.FullName)
	assert.Equal(t, 2, client.getRepoCalls)
}

func TestService_UserRepositoriesKeyedByUsername(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.GetUserRepositories(ctx, "octocat")
	require.NoError(t, err)
	_, err = svc.GetUserRepositories(ctx, "octocat")
	require.NoError(t, err)
	_, err = svc.GetUserRepositories(ctx, "torvalds")
	require.NoError(t, err)
	assert.Equal(t, 2, client.getUserRepoCalls)
}

func TestService_TrendingCached(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.GetTrendingRepositories(ctx, "Go")
	require.NoError(t, err)
	_, err = svc.GetTrendingRepositories(ctx, "Go")
	require.NoError(t, err)
	assert.Equal(t, 1, client.searchRepoCalls)

	_, err = svc.GetTrendingRepositories(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, client.searchRepoCalls)
}

func TestService_CalendarCached(t *testing.T) {
	svc, client, _ := setupTestService(t)
	ctx := context.Background()

	calendar, err := svc.GetContributionCalendar(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, 42, calendar.TotalContributions)

	_, err = svc.GetContributionCalendar(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, client.calendarCalls)
}
