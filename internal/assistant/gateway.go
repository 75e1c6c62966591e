// Package assistant turns free-text chat messages into grounded
// completions. A message is pattern-matched for GitHub entities, live data
// is fetched for whatever matched, and the assembled prompt goes to the
// generative-language endpoint in a single stateless call.
package assistant

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// completer is the slice of the generative model API the gateway needs.
// Satisfied by *genai.GenerativeModel; tests substitute a fake.
type completer interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Reply is the assistant's answer to one message.
type Reply struct {
	Text  string
	Links []models.MessageLink
}

// Gateway resolves chat messages against GitHub data and the completion
// endpoint.
type Gateway struct {
	model  completer
	data   DataSource
	logger *logrus.Logger
	closer func() error
}

// NewGateway creates a gateway backed by the Gemini generateContent
// endpoint.
func NewGateway(ctx context.Context, apiKey, modelName string, data DataSource, logger *logrus.Logger) (*Gateway, error) {
	if apiKey == "" {
		return nil, apperrors.NewValidationError("assistant API key cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, apperrors.NewCompletionError("failed to create completion client", err)
	}

	return &Gateway{
		model:  client.GenerativeModel(modelName),
		data:   data,
		logger: logger,
		closer: client.Close,
	}, nil
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	if g.closer != nil {
		return g.closer()
	}
	return nil
}

// Ask resolves a context for message, sends the assembled prompt to the
// completion endpoint and extracts the reply text. Transport or endpoint
// failures come back as a typed error for the caller to surface as a
// message-level error bubble; nothing is retried.
func (g *Gateway) Ask(ctx context.Context, message string) (*Reply, error) {
	resolved := resolveContext(ctx, g.data, message)
	prompt := buildPrompt(resolved, message)

	g.logger.WithFields(logrus.Fields{
		"context_resolved": !resolved.Empty(),
		"prompt_bytes":     len(prompt),
	}).Debug("Sending completion request")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.WithError(err).Warn("Completion request failed")
		return nil, apperrors.NewCompletionError("completion request failed", err)
	}

	return &Reply{
		Text:  extractText(resp),
		Links: contextLinks(resolved),
	}, nil
}

// extractText returns the first non-blank text part of the first candidate,
// or the fixed apology string when the response carries no usable text.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return apologyFallback
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			if trimmed := strings.TrimSpace(string(text)); trimmed != "" {
				return trimmed
			}
		}
	}
	return apologyFallback
}

// contextLinks builds the navigation links for whatever the intent step
// resolved. Metadata alongside the reply text, never derived from it.
func contextLinks(resolved *Context) []models.MessageLink {
	if resolved.Empty() {
		return nil
	}

	var links []models.MessageLink
	switch {
	case resolved.Repository != nil:
		links = append(links, repositoryLink(*resolved.Repository))
	case resolved.User != nil:
		links = append(links, userLink(*resolved.User))
	case len(resolved.Repositories) > 0:
		for i, repo := range resolved.Repositories {
			if i == maxListedEntities {
				break
			}
			links = append(links, repositoryLink(repo))
		}
	case len(resolved.Users) > 0:
		for i, user := range resolved.Users {
			if i == maxListedEntities {
				break
			}
			links = append(links, userLink(user))
		}
	}
	return links
}

func repositoryLink(repo models.Repository) models.MessageLink {
	return models.MessageLink{
		Label:  repo.FullName,
		Target: repo.FullName,
		Kind:   models.LinkRepository,
	}
}

func userLink(user models.User) models.MessageLink {
	return models.MessageLink{
		Label:  "@" + user.Login,
		Target: user.Login,
		Kind:   models.LinkUser,
	}
}
