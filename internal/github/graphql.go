package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// contributionsQuery is the one fixed GraphQL query the app issues. The
// source only provides raw daily counts; intensity levels are bucketed
// client-side.
const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            weekday
            color
          }
        }
      }
    }
  }
}`

// GetContributionCalendar fetches a year of daily contribution counts for
// username and buckets each day into an intensity level. Requires a
// configured token; the GraphQL endpoint rejects anonymous calls.
func (c *Client) GetContributionCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}
	if c.token == "" {
		return nil, apperrors.NewValidationError("contribution calendar requires a GitHub token")
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]string{"login": username},
	})
	if err != nil {
		return nil, apperrors.NewParseError("failed to encode query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphQLURL, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.NewTransportError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("login", username).Warn("GraphQL request failed")
		return nil, apperrors.NewTransportError("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, body, fmt.Sprintf("user %s", username))
	}

	var result calendarResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperrors.NewParseError("failed to decode response", err)
	}
	if len(result.Errors) > 0 {
		return nil, apperrors.NewTransportError(result.Errors[0].Message, nil)
	}
	if result.Data.User == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", username), nil)
	}

	return buildCalendar(&result), nil
}
