package github

import (
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// RepositorySearchResult is the full search payload including the aggregate
// total. SearchRepositoriesWithCount returns it uncached for live
// statistics; the plain search variant keeps only Items.
type RepositorySearchResult struct {
	TotalCount        int                 `json:"total_count"`
	IncompleteResults bool                `json:"incomplete_results"`
	Items             []models.Repository `json:"items"`
}

type userSearchResponse struct {
	TotalCount        int           `json:"total_count"`
	IncompleteResults bool          `json:"incomplete_results"`
	Items             []models.User `json:"items"`
}

// graphQLRequest is the envelope for the contribution calendar query.
type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// calendarResponse mirrors the fields requested by contributionsQuery.
type calendarResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
							Weekday           int    `json:"weekday"`
							Color             string `json:"color"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}
