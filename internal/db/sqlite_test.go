package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func testRepository() *models.Repository {
	return &models.Repository{
		ID:       10270250,
		Name:     "react",
		FullName: "facebook/react",
		Owner: models.RepositoryOwner{
			ID:    69631,
			Login: "facebook",
			Type:  "Organization",
		},
		Description: "UI library",
		Language:    "JavaScript",
		StarsCount:  220000,
		Topics:      []string{"javascript", "ui"},
		Visibility:  "public",
		CreatedAt:   time.Date(2013, 5, 24, 16, 15, 54, 0, time.UTC),
	}
}

func TestSQLiteStore_SaveAndListRepositories(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFavoriteRepository(ctx, testRepository()))

	favorites, err := store.ListFavoriteRepositories(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	fav := favorites[0]
	assert.Equal(t, int64(10270250), fav.ID)
	assert.Equal(t, "facebook/react", fav.FullName)
	assert.Equal(t, "facebook", fav.Owner.Login)
	assert.Equal(t, []string{"javascript", "ui"}, fav.Topics)
	assert.False(t, fav.SavedAt.IsZero())
}

func TestSQLiteStore_UpsertReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	repo := testRepository()
	require.NoError(t, store.SaveFavoriteRepository(ctx, repo))

	repo.StarsCount = 230000
	require.NoError(t, store.SaveFavoriteRepository(ctx, repo))

	favorites, err := store.ListFavoriteRepositories(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1, "saving an existing id must replace, not duplicate")
	assert.Equal(t, 230000, favorites[0].StarsCount)
}

func TestSQLiteStore_ToggleIdempotence(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := testRepository()

	saved, err := store.ToggleFavoriteRepository(ctx, repo)
	require.NoError(t, err)
	assert.True(t, saved)

	isFav, err := store.IsFavoriteRepository(ctx, repo.ID)
	require.NoError(t, err)
	assert.True(t, isFav)

	// Toggling again returns the entity to its original state.
	saved, err = store.ToggleFavoriteRepository(ctx, repo)
	require.NoError(t, err)
	assert.False(t, saved)

	isFav, err = store.IsFavoriteRepository(ctx, repo.ID)
	require.NoError(t, err)
	assert.False(t, isFav)

	favorites, err := store.ListFavoriteRepositories(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestSQLiteStore_FavoriteUsers(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	user := &models.User{
		ID:        583231,
		Login:     "octocat",
		Name:      "The Octocat",
		Followers: 10000,
	}

	saved, err := store.ToggleFavoriteUser(ctx, user)
	require.NoError(t, err)
	assert.True(t, saved)

	favorites, err := store.ListFavoriteUsers(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "octocat", favorites[0].Login)

	require.NoError(t, store.DeleteFavoriteUser(ctx, user.ID))
	isFav, err := store.IsFavoriteUser(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestSQLiteStore_DeleteMissingIsNoOp(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.DeleteFavoriteRepository(ctx, 999))
	assert.NoError(t, store.DeleteFavoriteUser(ctx, 999))
}

func TestSQLiteStore_WatchNotifies(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	ch := store.Watch()

	require.NoError(t, store.SaveFavoriteRepository(ctx, testRepository()))
	select {
	case change := <-ch:
		assert.Equal(t, ChangedRepositories, change.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a repositories change notification")
	}

	require.NoError(t, store.SaveFavoriteUser(ctx, &models.User{ID: 1, Login: "octocat"}))
	select {
	case change := <-ch:
		assert.Equal(t, ChangedUsers, change.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected a users change notification")
	}
}

func TestSQLiteStore_CloseClosesWatchers(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)

	ch := store.Watch()
	require.NoError(t, store.Close())

	_, open := <-ch
	assert.False(t, open)
}
