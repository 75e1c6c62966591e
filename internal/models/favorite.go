package models

import "time"

// FavoriteRepository is a user-pinned repository persisted in the local
// store. Keyed by the remote numeric id; saving an existing id replaces the
// prior row.
type FavoriteRepository struct {
	Repository
	SavedAt time.Time `json:"saved_at"`
}

// FavoriteUser is a user-pinned account persisted in the local store.
type FavoriteUser struct {
	User
	SavedAt time.Time `json:"saved_at"`
}
