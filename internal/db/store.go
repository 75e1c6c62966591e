package db

import (
	"context"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// ChangeKind says which favorites table a change notification refers to.
type ChangeKind string

const (
	ChangedRepositories ChangeKind = "repositories"
	ChangedUsers        ChangeKind = "users"
)

// Change is one mutation notification emitted to Watch subscribers.
// Subscribers re-read the list they care about; the notification carries no
// payload.
type Change struct {
	Kind ChangeKind
}

// Store defines the interface for the local favorites store
type Store interface {
	// Favorite repository operations
	SaveFavoriteRepository(ctx context.Context, repo *models.Repository) error
	DeleteFavoriteRepository(ctx context.Context, id int64) error
	ListFavoriteRepositories(ctx context.Context) ([]models.FavoriteRepository, error)
	IsFavoriteRepository(ctx context.Context, id int64) (bool, error)
	ToggleFavoriteRepository(ctx context.Context, repo *models.Repository) (bool, error)

	// Favorite user operations
	SaveFavoriteUser(ctx context.Context, user *models.User) error
	DeleteFavoriteUser(ctx context.Context, id int64) error
	ListFavoriteUsers(ctx context.Context) ([]models.FavoriteUser, error)
	IsFavoriteUser(ctx context.Context, id int64) (bool, error)
	ToggleFavoriteUser(ctx context.Context, user *models.User) (bool, error)

	// Watch returns a channel of change notifications. The channel closes
	// when the store closes.
	Watch() <-chan Change

	Close() error
}
