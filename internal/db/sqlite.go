// Package db implements the local favorites store over an embedded SQLite
// database. Rows are keyed by the remote entity's numeric id: saving an
// existing id replaces the prior row, so concurrent toggles on the same id
// stay idempotent.
package db

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore implements Store over a single database file.
type SQLiteStore struct {
	db *sql.DB

	mu       sync.Mutex
	watchers []chan Change
	closed   bool
}

// NewSQLiteStore opens (creating if needed) the database at path and runs
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SaveFavoriteRepository upserts repo keyed by its remote id. Last write
// wins; duplicates are impossible.
func (s *SQLiteStore) SaveFavoriteRepository(ctx context.Context, repo *models.Repository) error {
	topics, err := json.Marshal(repo.Topics)
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO favorite_repositories (
			id, name, full_name, owner_id, owner_login, owner_avatar_url,
			owner_type, description, language, stars_count, forks_count,
			watchers_count, open_issues_count, topics, visibility, archived,
			fork, created_at, updated_at, saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		repo.ID, repo.Name, repo.FullName, repo.Owner.ID, repo.Owner.Login,
		repo.Owner.AvatarURL, repo.Owner.Type, repo.Description, repo.Language,
		repo.StarsCount, repo.ForksCount, repo.WatchersCount,
		repo.OpenIssuesCount, string(topics), repo.Visibility, repo.Archived,
		repo.Fork, repo.CreatedAt, repo.UpdatedAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save favorite repository: %w", err)
	}

	s.notify(ChangedRepositories)
	return nil
}

// DeleteFavoriteRepository removes the row with id, a no-op if absent.
func (s *SQLiteStore) DeleteFavoriteRepository(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM favorite_repositories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete favorite repository: %w", err)
	}
	s.notify(ChangedRepositories)
	return nil
}

// ListFavoriteRepositories returns all saved repositories, most recently
// saved first.
func (s *SQLiteStore) ListFavoriteRepositories(ctx context.Context) ([]models.FavoriteRepository, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, full_name, owner_id, owner_login, owner_avatar_url,
			owner_type, description, language, stars_count, forks_count,
			watchers_count, open_issues_count, topics, visibility, archived,
			fork, created_at, updated_at, saved_at
		FROM favorite_repositories
		ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite repositories: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteRepository
	for rows.Next() {
		var fav models.FavoriteRepository
		var topics string
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&fav.ID, &fav.Name, &fav.FullName, &fav.Owner.ID,
			&fav.Owner.Login, &fav.Owner.AvatarURL, &fav.Owner.Type,
			&fav.Description, &fav.Language, &fav.StarsCount, &fav.ForksCount,
			&fav.WatchersCount, &fav.OpenIssuesCount, &topics, &fav.Visibility,
			&fav.Archived, &fav.Fork, &createdAt, &updatedAt, &fav.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite repository: %w", err)
		}
		if err := json.Unmarshal([]byte(topics), &fav.Topics); err != nil {
			return nil, fmt.Errorf("failed to decode topics: %w", err)
		}
		fav.CreatedAt = createdAt.Time
		fav.UpdatedAt = updatedAt.Time
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

// IsFavoriteRepository reports whether a row with id exists.
func (s *SQLiteStore) IsFavoriteRepository(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM favorite_repositories WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite repository: %w", err)
	}
	return count > 0, nil
}

// ToggleFavoriteRepository flips the favorite state of repo and reports the
// new state.
func (s *SQLiteStore) ToggleFavoriteRepository(ctx context.Context, repo *models.Repository) (bool, error) {
	saved, err := s.IsFavoriteRepository(ctx, repo.ID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.DeleteFavoriteRepository(ctx, repo.ID)
	}
	return true, s.SaveFavoriteRepository(ctx, repo)
}

// SaveFavoriteUser upserts user keyed by its remote id.
func (s *SQLiteStore) SaveFavoriteUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO favorite_users (
			id, login, avatar_url, name, bio, company, location,
			public_repos, followers, following, created_at, saved_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Login, user.AvatarURL, user.Name, user.Bio,
		user.Company, user.Location, user.PublicRepos, user.Followers,
		user.Following, user.CreatedAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save favorite user: %w", err)
	}

	s.notify(ChangedUsers)
	return nil
}

// DeleteFavoriteUser removes the row with id, a no-op if absent.
func (s *SQLiteStore) DeleteFavoriteUser(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM favorite_users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete favorite user: %w", err)
	}
	s.notify(ChangedUsers)
	return nil
}

// ListFavoriteUsers returns all saved users, most recently saved first.
func (s *SQLiteStore) ListFavoriteUsers(ctx context.Context) ([]models.FavoriteUser, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, login, avatar_url, name, bio, company, location,
			public_repos, followers, following, created_at, saved_at
		FROM favorite_users
		ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite users: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteUser
	for rows.Next() {
		var fav models.FavoriteUser
		var createdAt sql.NullTime
		if err := rows.Scan(&fav.ID, &fav.Login, &fav.AvatarURL, &fav.Name,
			&fav.Bio, &fav.Company, &fav.Location, &fav.PublicRepos,
			&fav.Followers, &fav.Following, &createdAt, &fav.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite user: %w", err)
		}
		fav.CreatedAt = createdAt.Time
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

// IsFavoriteUser reports whether a row with id exists.
func (s *SQLiteStore) IsFavoriteUser(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM favorite_users WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite user: %w", err)
	}
	return count > 0, nil
}

// ToggleFavoriteUser flips the favorite state of user and reports the new
// state.
func (s *SQLiteStore) ToggleFavoriteUser(ctx context.Context, user *models.User) (bool, error) {
	saved, err := s.IsFavoriteUser(ctx, user.ID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.DeleteFavoriteUser(ctx, user.ID)
	}
	return true, s.SaveFavoriteUser(ctx, user)
}

// Watch subscribes to change notifications. Slow subscribers drop
// notifications rather than block writers; a dropped notification only
// means the subscriber re-reads one mutation later.
func (s *SQLiteStore) Watch() <-chan Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Change, 16)
	if s.closed {
		close(ch)
		return ch
	}
	s.watchers = append(s.watchers, ch)
	return ch
}

func (s *SQLiteStore) notify(kind ChangeKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, ch := range s.watchers {
		select {
		case ch <- Change{Kind: kind}:
		default:
		}
	}
}

// Close closes the database and all watcher channels.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		for _, ch := range s.watchers {
			close(ch)
		}
		s.watchers = nil
	}
	s.mu.Unlock()

	return s.db.Close()
}
