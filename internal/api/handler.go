package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/assistant"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/db"
	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/stats"
)

// GitHubService is the gateway surface the handlers read through
type GitHubService interface {
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	SearchRepositories(ctx context.Context, query string) ([]models.Repository, error)
	GetUserDetails(ctx context.Context, username string) (*models.User, error)
	GetUserRepositories(ctx context.Context, username string) ([]models.Repository, error)
	GetRepository(ctx context.Context, owner, name string) (*models.Repository, error)
	GetContributionCalendar(ctx context.Context, username string) (*models.ContributionCalendar, error)
	GetTrendingRepositories(ctx context.Context, language string) ([]models.Repository, error)
}

// Assistant is the chat surface; nil when no API key is configured
type Assistant interface {
	Ask(ctx context.Context, message string) (*assistant.Reply, error)
}

// StatsService computes the language popularity chart
type StatsService interface {
	LanguagePopularity(ctx context.Context) []stats.LanguageShare
}

type Handler struct {
	github     GitHubService
	store      db.Store
	assistant  Assistant
	transcript *assistant.Transcript
	stats      StatsService
	logger     *logrus.Logger
}

func NewHandler(github GitHubService, store db.Store, chat Assistant, statsService StatsService, logger *logrus.Logger) *Handler {
	return &Handler{
		github:     github,
		store:      store,
		assistant:  chat,
		transcript: assistant.NewTranscript(),
		stats:      statsService,
		logger:     logger,
	}
}

// SearchRepositories godoc
// @Summary Search repositories
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} ListResponse
// @Failure 429 {object} ErrorResponse
// @Router /search/repositories [get]
func (h *Handler) SearchRepositories(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondWithError(c, apperrors.NewValidationError("missing query parameter q"))
		return
	}

	repos, err := h.github.SearchRepositories(c.Request.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Repository search failed")
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Items: emptyIfNilRepos(repos), Total: len(repos)})
}

// SearchUsers godoc
// @Summary Search users
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} ListResponse
// @Router /search/users [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondWithError(c, apperrors.NewValidationError("missing query parameter q"))
		return
	}

	users, err := h.github.SearchUsers(c.Request.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("User search failed")
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Items: emptyIfNilUsers(users), Total: len(users)})
}

// GetUser godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{username} [get]
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.github.GetUserDetails(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserRepositories godoc
// @Summary List a user's repositories
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} ListResponse
// @Router /users/{username}/repos [get]
func (h *Handler) GetUserRepositories(c *gin.Context) {
	repos, err := h.github.GetUserRepositories(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: emptyIfNilRepos(repos), Total: len(repos)})
}

// GetContributionCalendar godoc
// @Summary Get a user's contribution calendar
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.ContributionCalendar
// @Router /users/{username}/calendar [get]
func (h *Handler) GetContributionCalendar(c *gin.Context) {
	calendar, err := h.github.GetContributionCalendar(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}

// GetRepository godoc
// @Summary Get a repository
// @Tags repositories
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} models.Repository
// @Failure 404 {object} ErrorResponse
// @Router /repos/{owner}/{repo} [get]
func (h *Handler) GetRepository(c *gin.Context) {
	repo, err := h.github.GetRepository(c.Request.Context(), c.Param("owner"), c.Param("repo"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, repo)
}

// GetTrending godoc
// @Summary List trending repositories
// @Tags repositories
// @Produce json
// @Param language query string false "Restrict to one language"
// @Success 200 {object} ListResponse
// @Router /trending [get]
func (h *Handler) GetTrending(c *gin.Context) {
	repos, err := h.github.GetTrendingRepositories(c.Request.Context(), c.Query("language"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: emptyIfNilRepos(repos), Total: len(repos)})
}

// GetLanguageStats godoc
// @Summary Language popularity distribution
// @Tags stats
// @Produce json
// @Success 200 {object} ListResponse
// @Router /stats/languages [get]
func (h *Handler) GetLanguageStats(c *gin.Context) {
	shares := h.stats.LanguagePopularity(c.Request.Context())
	c.JSON(http.StatusOK, ListResponse{Items: shares, Total: len(shares)})
}

// ListFavoriteRepositories godoc
// @Summary List favorited repositories
// @Tags favorites
// @Produce json
// @Success 200 {object} ListResponse
// @Router /favorites/repositories [get]
func (h *Handler) ListFavoriteRepositories(c *gin.Context) {
	favorites, err := h.store.ListFavoriteRepositories(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list favorite repositories")
		respondWithError(c, err)
		return
	}
	if favorites == nil {
		favorites = []models.FavoriteRepository{}
	}
	c.JSON(http.StatusOK, ListResponse{Items: favorites, Total: len(favorites)})
}

// ToggleFavoriteRepository godoc
// @Summary Toggle a repository's favorite state
// @Tags favorites
// @Accept json
// @Produce json
// @Param repository body models.Repository true "Repository to toggle"
// @Success 200 {object} map[string]bool
// @Router /favorites/repositories/toggle [post]
func (h *Handler) ToggleFavoriteRepository(c *gin.Context) {
	var repo models.Repository
	if err := c.ShouldBindJSON(&repo); err != nil {
		respondWithError(c, apperrors.NewValidationError("invalid repository payload"))
		return
	}
	if repo.ID == 0 {
		respondWithError(c, apperrors.NewValidationError("repository id is required"))
		return
	}

	saved, err := h.store.ToggleFavoriteRepository(c.Request.Context(), &repo)
	if err != nil {
		h.logger.WithError(err).WithField("repo", repo.FullName).Error("Favorite toggle failed")
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": saved})
}

// ListFavoriteUsers godoc
// @Summary List favorited users
// @Tags favorites
// @Produce json
// @Success 200 {object} ListResponse
// @Router /favorites/users [get]
func (h *Handler) ListFavoriteUsers(c *gin.Context) {
	favorites, err := h.store.ListFavoriteUsers(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list favorite users")
		respondWithError(c, err)
		return
	}
	if favorites == nil {
		favorites = []models.FavoriteUser{}
	}
	c.JSON(http.StatusOK, ListResponse{Items: favorites, Total: len(favorites)})
}

// ToggleFavoriteUser godoc
// @Summary Toggle a user's favorite state
// @Tags favorites
// @Accept json
// @Produce json
// @Param user body models.User true "User to toggle"
// @Success 200 {object} map[string]bool
// @Router /favorites/users/toggle [post]
func (h *Handler) ToggleFavoriteUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondWithError(c, apperrors.NewValidationError("invalid user payload"))
		return
	}
	if user.ID == 0 {
		respondWithError(c, apperrors.NewValidationError("user id is required"))
		return
	}

	saved, err := h.store.ToggleFavoriteUser(c.Request.Context(), &user)
	if err != nil {
		h.logger.WithError(err).WithField("user", user.Login).Error("Favorite toggle failed")
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": saved})
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat godoc
// @Summary Send a chat message to the assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param message body chatRequest true "User message"
// @Success 200 {object} ListResponse
// @Failure 503 {object} ErrorResponse
// @Router /chat [post]
func (h *Handler) Chat(c *gin.Context) {
	if h.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "assistant is not configured"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		respondWithError(c, apperrors.NewValidationError("message is required"))
		return
	}

	sent := h.transcript.AddUserMessage(req.Message)

	reply, err := h.assistant.Ask(c.Request.Context(), req.Message)
	if err != nil {
		// Completion failures land in the transcript as an error bubble,
		// not as a request-level failure.
		h.logger.WithError(err).Warn("Assistant request failed")
		bubble := h.transcript.AddFailure(apperrors.UserMessage(err))
		c.JSON(http.StatusOK, ListResponse{
			Items: []models.ChatMessage{sent, bubble},
			Total: 2,
		})
		return
	}

	answer := h.transcript.AddReply(reply)
	c.JSON(http.StatusOK, ListResponse{
		Items: []models.ChatMessage{sent, answer},
		Total: 2,
	})
}

// GetTranscript godoc
// @Summary Read the session chat transcript
// @Tags chat
// @Produce json
// @Success 200 {object} ListResponse
// @Router /chat [get]
func (h *Handler) GetTranscript(c *gin.Context) {
	messages := h.transcript.Messages()
	c.JSON(http.StatusOK, ListResponse{Items: messages, Total: len(messages)})
}

func emptyIfNilRepos(repos []models.Repository) []models.Repository {
	if repos == nil {
		return []models.Repository{}
	}
	return repos
}

func emptyIfNilUsers(users []models.User) []models.User {
	if users == nil {
		return []models.User{}
	}
	return users
}
