package github

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
)

// classifyStatus maps a non-2xx GitHub response to the application error
// taxonomy. 429 is always a rate limit; 403 only when the body says so,
// since GitHub also uses 403 for plain authorization failures.
func classifyStatus(statusCode int, body []byte, resource string) *apperrors.AppError {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return apperrors.NewRateLimitError(nil)
	case statusCode == http.StatusForbidden && isRateLimitBody(body):
		return apperrors.NewRateLimitError(nil)
	case statusCode == http.StatusNotFound:
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", resource), nil)
	default:
		return apperrors.NewTransportError(
			fmt.Sprintf("GitHub API error (status %d): %s", statusCode, strings.TrimSpace(string(body))), nil)
	}
}

func isRateLimitBody(body []byte) bool {
	return strings.Contains(strings.ToLower(string(body)), "rate limit")
}
