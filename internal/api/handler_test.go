package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/assistant"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/db"
	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/stats"
)

type fakeGitHub struct {
	repos []models.Repository
	users []models.User
	err   error
}

func (f *fakeGitHub) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeGitHub) SearchRepositories(ctx context.Context, query string) ([]models.Repository, error) {
	return f.repos, f.err
}

func (f *fakeGitHub) GetUserDetails(ctx context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: 1, Login: username}, nil
}

func (f *fakeGitHub) GetUserRepositories(ctx context.Context, username string) ([]models.Repository, error) {
	return f.repos, f.err
}

func (f *fakeGitHub) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Repository{ID: 1, FullName: owner + "/" + name}, nil
}

func (f *fakeGitHub) GetContributionCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ContributionCalendar{TotalContributions: 5}, nil
}

func (f *fakeGitHub) GetTrendingRepositories(ctx context.Context, language string) ([]models.Repository, error) {
	return f.repos, f.err
}

// memStore is an in-memory db.Store for handler tests.
type memStore struct {
	repos map[int64]models.FavoriteRepository
	users map[int64]models.FavoriteUser
}

func newMemStore() *memStore {
	return &memStore{
		repos: make(map[int64]models.FavoriteRepository),
		users: make(map[int64]models.FavoriteUser),
	}
}

func (m *memStore) SaveFavoriteRepository(ctx context.Context, repo *models.Repository) error {
	m.repos[repo.ID] = models.FavoriteRepository{Repository: *repo}
	return nil
}

func (m *memStore) DeleteFavoriteRepository(ctx context.Context, id int64) error {
	delete(m.repos, id)
	return nil
}

func (m *memStore) ListFavoriteRepositories(ctx context.Context) ([]models.FavoriteRepository, error) {
	var out []models.FavoriteRepository
	for _, fav := range m.repos {
		out = append(out, fav)
	}
	return out, nil
}

func (m *memStore) IsFavoriteRepository(ctx context.Context, id int64) (bool, error) {
	_, ok := m.repos[id]
	return ok, nil
}

func (m *memStore) ToggleFavoriteRepository(ctx context.Context, repo *models.Repository) (bool, error) {
	if _, ok := m.repos[repo.ID]; ok {
		delete(m.repos, repo.ID)
		return false, nil
	}
	m.repos[repo.ID] = models.FavoriteRepository{Repository: *repo}
	return true, nil
}

func (m *memStore) SaveFavoriteUser(ctx context.Context, user *models.User) error {
	m.users[user.ID] = models.FavoriteUser{User: *user}
	return nil
}

func (m *memStore) DeleteFavoriteUser(ctx context.Context, id int64) error {
	delete(m.users, id)
	return nil
}

func (m *memStore) ListFavoriteUsers(ctx context.Context) ([]models.FavoriteUser, error) {
	var out []models.FavoriteUser
	for _, fav := range m.users {
		out = append(out, fav)
	}
	return out, nil
}

func (m *memStore) IsFavoriteUser(ctx context.Context, id int64) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *memStore) ToggleFavoriteUser(ctx context.Context, user *models.User) (bool, error) {
	if _, ok := m.users[user.ID]; ok {
		delete(m.users, user.ID)
		return false, nil
	}
	m.users[user.ID] = models.FavoriteUser{User: *user}
	return true, nil
}

func (m *memStore) Watch() <-chan db.Change {
	ch := make(chan db.Change)
	close(ch)
	return ch
}

func (m *memStore) Close() error { return nil }

type fakeAssistant struct {
	reply *assistant.Reply
	err   error
}

func (f *fakeAssistant) Ask(ctx context.Context, message string) (*assistant.Reply, error) {
	return f.reply, f.err
}

type fakeStats struct{}

func (fakeStats) LanguagePopularity(ctx context.Context) []stats.LanguageShare {
	return []stats.LanguageShare{{Language: "Go", Percent: 100}}
}

func setupTestRouter(t *testing.T, gh *fakeGitHub, chat Assistant) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	store := newMemStore()
	h := NewHandler(gh, store, chat, fakeStats{}, logger)
	return SetupRouter(h), store
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchRepositories_Success(t *testing.T) {
	gh := &fakeGitHub{repos: []models.Repository{{ID: 1, FullName: "facebook/react"}}}
	router, _ := setupTestRouter(t, gh, nil)

	w := doRequest(router, "GET", "/api/v1/search/repositories?q=react", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Repository `json:"items"`
		Total int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "facebook/react", resp.Items[0].FullName)
}

func TestSearchRepositories_ExplicitEmpty(t *testing.T) {
	router, _ := setupTestRouter(t, &fakeGitHub{}, nil)

	w := doRequest(router, "GET", "/api/v1/search/repositories?q=zzzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items": [], "total": 0}`, w.Body.String())
}

func TestSearchRepositories_MissingQuery(t *testing.T) {
	router, _ := setupTestRouter(t, &fakeGitHub{}, nil)

	w := doRequest(router, "GET", "/api/v1/search/repositories", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRepositories_RateLimit(t *testing.T) {
	gh := &fakeGitHub{err: apperrors.NewRateLimitError(nil)}
	router, _ := setupTestRouter(t, gh, nil)

	w := doRequest(router, "GET", "/api/v1/search/repositories?q=react", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.MsgRateLimited, resp.Error)
}

func TestGetUser_NotFound(t *testing.T) {
	gh := &fakeGitHub{err: apperrors.NewNotFoundError("user nobody not found", nil)}
	router, _ := setupTestRouter(t, gh, nil)

	w := doRequest(router, "GET", "/api/v1/users/nobody", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user nobody not found", resp.Error)
}

func TestToggleFavoriteRepository(t *testing.T) {
	router, store := setupTestRouter(t, &fakeGitHub{}, nil)
	repo := models.Repository{ID: 42, FullName: "golang/go"}

	w := doRequest(router, "POST", "/api/v1/favorites/repositories/toggle", repo)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"is_favorite": true}`, w.Body.String())
	assert.Len(t, store.repos, 1)

	// Toggling twice returns the entity to its original state.
	w = doRequest(router, "POST", "/api/v1/favorites/repositories/toggle", repo)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"is_favorite": false}`, w.Body.String())
	assert.Empty(t, store.repos)
}

func TestToggleFavoriteRepository_RequiresID(t *testing.T) {
	router, _ := setupTestRouter(t, &fakeGitHub{}, nil)

	w := doRequest(router, "POST", "/api/v1/favorites/repositories/toggle",
		models.Repository{FullName: "no/id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat(t *testing.T) {
	chat := &fakeAssistant{reply: &assistant.Reply{
		Text: "React is popular.",
		Links: []models.MessageLink{
			{Label: "facebook/react", Target: "facebook/react", Kind: models.LinkRepository},
		},
	}}
	router, _ := setupTestRouter(t, &fakeGitHub{}, chat)

	w := doRequest(router, "POST", "/api/v1/chat", map[string]string{"message": "tell me about facebook/react"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.ChatMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].FromUser)
	assert.Equal(t, "React is popular.", resp.Items[1].Text)
	require.Len(t, resp.Items[1].Links, 1)

	// The transcript endpoint replays the session.
	w = doRequest(router, "GET", "/api/v1/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
}

func TestChat_FailureBecomesErrorBubble(t *testing.T) {
	chat := &fakeAssistant{err: apperrors.NewCompletionError("completion request failed", nil)}
	router, _ := setupTestRouter(t, &fakeGitHub{}, chat)

	w := doRequest(router, "POST", "/api/v1/chat", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.ChatMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[1].Failed)
}

func TestChat_Unconfigured(t *testing.T) {
	router, _ := setupTestRouter(t, &fakeGitHub{}, nil)

	w := doRequest(router, "POST", "/api/v1/chat", map[string]string{"message": "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetLanguageStats(t *testing.T) {
	router, _ := setupTestRouter(t, &fakeGitHub{}, nil)

	w := doRequest(router, "GET", "/api/v1/stats/languages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Go"`)
}
