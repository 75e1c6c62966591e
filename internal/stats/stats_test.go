package stats

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/github"
)

type fakeCounter struct {
	counts map[string]int
	err    error
	calls  int
}

func (f *fakeCounter) SearchRepositoriesWithCount(ctx context.Context, query string) (*github.RepositorySearchResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	language := strings.TrimPrefix(query, "language:")
	return &github.RepositorySearchResult{TotalCount: f.counts[language]}, nil
}

func newTestService(counter *fakeCounter) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return NewService(counter, logger)
}

func TestLanguagePopularity(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"JavaScript": 400,
		"Python":     300,
		"Java":       100,
		"Go":         100,
		"Kotlin":     50,
		"Swift":      50,
	}}
	svc := newTestService(counter)

	shares := svc.LanguagePopularity(context.Background())
	require.Len(t, shares, len(trackedLanguages))

	assert.Equal(t, "JavaScript", shares[0].Language)
	assert.InDelta(t, 40.0, shares[0].Percent, 0.001)
	assert.Equal(t, 400, shares[0].RepositoryCount)

	sum := 0.0
	for _, share := range shares {
		sum += share.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestLanguagePopularity_FallbackOnError(t *testing.T) {
	counter := &fakeCounter{err: assert.AnError}
	svc := newTestService(counter)

	shares := svc.LanguagePopularity(context.Background())
	assert.Equal(t, fallbackDistribution, shares)

	// The first failure short-circuits; no point counting the rest.
	assert.Equal(t, 1, counter.calls)
}

func TestLanguagePopularity_FallbackOnZeroTotal(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{}}
	svc := newTestService(counter)

	shares := svc.LanguagePopularity(context.Background())
	assert.Equal(t, fallbackDistribution, shares)
}
