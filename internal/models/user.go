package models

import "time"

// User represents a GitHub account profile as returned by the REST API.
// Instances are immutable snapshots; nothing in the app mutates them after
// fetch.
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	AvatarURL   string    `json:"avatar_url"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}
