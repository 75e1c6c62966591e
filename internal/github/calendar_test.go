package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContributionLevel_Boundaries(t *testing.T) {
	tests := []struct {
		count int
		level int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{6, 2},
		{7, 3},
		{9, 3},
		{10, 4},
		{100, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, contributionLevel(tt.count), "count=%d", tt.count)
	}
}

func TestContributionLevel_Monotonic(t *testing.T) {
	prev := 0
	for count := 0; count <= 50; count++ {
		level := contributionLevel(count)
		assert.GreaterOrEqual(t, level, prev, "count=%d", count)
		prev = level
	}
}
