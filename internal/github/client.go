package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

const (
	defaultBaseURL    = "https://api.github.com"
	defaultGraphQLURL = "https://api.github.com/graphql"
	defaultTimeout    = 30 * time.Second
)

// SearchOptions carries the optional query parameters of the search
// endpoints.
type SearchOptions struct {
	Sort    string
	Order   string
	PerPage int
	Page    int
}

// Client is a thin client for the GitHub REST and GraphQL APIs. Failures
// are classified into the application error taxonomy and returned to the
// caller; nothing is retried here.
type Client struct {
	client     *http.Client
	baseURL    string
	graphQLURL string
	token      string
	logger     *logrus.Logger
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithBaseURL overrides the REST endpoint, used by tests
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithGraphQLURL overrides the GraphQL endpoint, used by tests
func WithGraphQLURL(graphQLURL string) ClientOption {
	return func(c *Client) {
		c.graphQLURL = graphQLURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithTimeout overrides the connect/read timeout on the underlying client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// NewClient creates a new GitHub client. The token is optional: the REST
// search and read endpoints work unauthenticated at low volume, the GraphQL
// contribution query requires it.
func NewClient(token string, logger *logrus.Logger, opts ...ClientOption) *Client {
	httpClient := &http.Client{Timeout: defaultTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = defaultTimeout
	}

	client := &Client{
		client:     httpClient,
		baseURL:    defaultBaseURL,
		graphQLURL: defaultGraphQLURL,
		token:      token,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// get performs a GET against the REST API and decodes the response into
// result. resource names what was being fetched for not-found messages.
func (c *Client) get(ctx context.Context, rawURL, resource string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return apperrors.NewTransportError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("url", rawURL).Warn("GitHub request failed")
		return apperrors.NewTransportError("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		appErr := classifyStatus(resp.StatusCode, body, resource)
		c.logger.WithFields(logrus.Fields{
			"url":    rawURL,
			"status": resp.StatusCode,
			"type":   appErr.Type,
		}).Warn("GitHub request rejected")
		return appErr
	}

	if err := json.Unmarshal(body, result); err != nil {
		return apperrors.NewParseError("failed to decode response", err)
	}

	return nil
}

// SearchUsers searches accounts matching query.
func (c *Client) SearchUsers(ctx context.Context, query string, opts SearchOptions) ([]models.User, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("search query cannot be empty")
	}

	q := url.Values{}
	q.Set("q", query)
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}

	var result userSearchResponse
	if err := c.get(ctx, c.baseURL+"/search/users?"+q.Encode(), "users", &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// SearchRepositories searches repositories matching query, returning the
// full payload including the aggregate total count.
func (c *Client) SearchRepositories(ctx context.Context, query string, opts SearchOptions) (*RepositorySearchResult, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("search query cannot be empty")
	}

	q := url.Values{}
	q.Set("q", query)
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}

	var result RepositorySearchResult
	if err := c.get(ctx, c.baseURL+"/search/repositories?"+q.Encode(), "repositories", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser fetches one account profile.
func (c *Client) GetUser(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}

	var user models.User
	resource := fmt.Sprintf("user %s", username)
	if err := c.get(ctx, c.baseURL+"/users/"+url.PathEscape(username), resource, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserRepositories lists the repositories owned by username, most
// recently updated first.
func (c *Client) GetUserRepositories(ctx context.Context, username string, opts SearchOptions) ([]models.Repository, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}

	q := url.Values{}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.Order != "" {
		q.Set("direction", opts.Order)
	}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	var repos []models.Repository
	resource := fmt.Sprintf("user %s", username)
	rawURL := c.baseURL + "/users/" + url.PathEscape(username) + "/repos?" + q.Encode()
	if err := c.get(ctx, rawURL, resource, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepository fetches one repository.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	if owner == "" {
		return nil, apperrors.NewValidationError("owner cannot be empty")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	var repo models.Repository
	resource := fmt.Sprintf("repository %s/%s", owner, name)
	rawURL := c.baseURL + "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name)
	if err := c.get(ctx, rawURL, resource, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}
