package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
)

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse wraps list payloads so an empty result is explicit rather
// than a null body.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}

// respondWithError maps an application error to a status code and the
// user-facing message for it.
func respondWithError(c *gin.Context, err error) {
	status := 500
	switch {
	case apperrors.IsNotFound(err):
		status = 404
	case apperrors.IsRateLimit(err):
		status = 429
	case apperrors.IsInvalidInput(err):
		status = 400
	}
	c.JSON(status, ErrorResponse{Error: apperrors.UserMessage(err)})
}
