package models

import "time"

// RepositoryOwner is the owner block embedded in a repository payload.
type RepositoryOwner struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Type      string `json:"type"`
}

// Repository represents a GitHub repository as returned by the REST API.
type Repository struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	FullName        string          `json:"full_name"`
	Owner           RepositoryOwner `json:"owner"`
	Description     string          `json:"description"`
	Language        string          `json:"language"`
	StarsCount      int             `json:"stargazers_count"`
	ForksCount      int             `json:"forks_count"`
	WatchersCount   int             `json:"watchers_count"`
	OpenIssuesCount int             `json:"open_issues_count"`
	Topics          []string        `json:"topics"`
	Visibility      string          `json:"visibility"`
	Archived        bool            `json:"archived"`
	Fork            bool            `json:"fork"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
