// Package stats computes the home-screen language popularity distribution
// from live repository counts.
package stats

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/github"
)

// trackedLanguages are the languages the home screen charts.
var trackedLanguages = []string{"JavaScript", "Python", "Java", "Go", "Kotlin", "Swift"}

// fallbackDistribution is served when any live count fails. One of the two
// documented local-recovery points: statistics degrade to a plausible
// static chart instead of an error screen.
var fallbackDistribution = []LanguageShare{
	{Language: "JavaScript", Percent: 32.0},
	{Language: "Python", Percent: 28.0},
	{Language: "Java", Percent: 16.0},
	{Language: "Go", Percent: 10.0},
	{Language: "Kotlin", Percent: 8.0},
	{Language: "Swift", Percent: 6.0},
}

// LanguageShare is one slice of the popularity chart.
type LanguageShare struct {
	Language        string  `json:"language"`
	Percent         float64 `json:"percent"`
	RepositoryCount int     `json:"repository_count,omitempty"`
}

// Counter is the gateway surface the service needs: the uncached search
// variant, since these are live aggregates.
type Counter interface {
	SearchRepositoriesWithCount(ctx context.Context, query string) (*github.RepositorySearchResult, error)
}

// Service computes language popularity shares.
type Service struct {
	gh     Counter
	logger *logrus.Logger
}

// NewService creates a stats service over the gateway.
func NewService(gh Counter, logger *logrus.Logger) *Service {
	return &Service{gh: gh, logger: logger}
}

// LanguagePopularity returns the percentage share of repositories per
// tracked language. Any fetch failure falls back to the hardcoded
// distribution; a partial chart would be misleading.
func (s *Service) LanguagePopularity(ctx context.Context) []LanguageShare {
	counts := make([]int, len(trackedLanguages))
	total := 0

	for i, language := range trackedLanguages {
		result, err := s.gh.SearchRepositoriesWithCount(ctx, fmt.Sprintf("language:%s", language))
		if err != nil {
			s.logger.WithError(err).WithField("language", language).
				Warn("Language count failed, serving fallback distribution")
			return fallbackDistribution
		}
		counts[i] = result.TotalCount
		total += result.TotalCount
	}

	if total == 0 {
		return fallbackDistribution
	}

	shares := make([]LanguageShare, len(trackedLanguages))
	for i, language := range trackedLanguages {
		shares[i] = LanguageShare{
			Language:        language,
			Percent:         float64(counts[i]) / float64(total) * 100,
			RepositoryCount: counts[i],
		}
	}
	return shares
}
