package assistant

import (
	"fmt"
	"strings"
)

// maxListedEntities caps how many search hits are serialized into the
// prompt to keep it small.
const maxListedEntities = 5

// systemPersona is the fixed instruction block prepended to every
// completion request. The off-topic refusal is prompt-level only; the
// client cannot enforce it beyond making declineTemplate available.
const systemPersona = `You are Gitly, an assistant embedded in a GitHub client app.
You answer questions about GitHub: repositories, developers, programming
languages, open source projects and trends. Base your answer on the
"[DATA FOUND]" block when one is present; it holds live GitHub data
relevant to the question. Keep answers short and factual.
If the question is not about GitHub or software development, reply exactly:
"` + declineTemplate + `"`

// declineTemplate is the fixed refusal for off-topic questions.
const declineTemplate = "I can only help with GitHub-related questions. Ask me about repositories, developers or open source trends."

// apologyFallback is substituted when the completion contains no usable
// text part.
const apologyFallback = "Sorry, I couldn't come up with an answer. Please try rephrasing your question."

// buildPrompt assembles the persona block, the optional serialized context
// and the raw user message into the single text sent to the model. Each
// call is stateless; no prior transcript turns are included.
func buildPrompt(resolved *Context, message string) string {
	var b strings.Builder
	b.WriteString(systemPersona)
	b.WriteString("\n\n")

	if !resolved.Empty() {
		b.WriteString("[DATA FOUND]\n")
		b.WriteString(serializeContext(resolved))
		b.WriteString("\n")
	}

	b.WriteString("User message: ")
	b.WriteString(message)
	return b.String()
}

func serializeContext(resolved *Context) string {
	var b strings.Builder

	switch {
	case resolved.Repository != nil:
		repo := resolved.Repository
		fmt.Fprintf(&b, "Repository %s\n", repo.FullName)
		fmt.Fprintf(&b, "  stars: %d, forks: %d, open issues: %d\n",
			repo.StarsCount, repo.ForksCount, repo.OpenIssuesCount)
		if repo.Language != "" {
			fmt.Fprintf(&b, "  language: %s\n", repo.Language)
		}
		if repo.Description != "" {
			fmt.Fprintf(&b, "  description: %s\n", repo.Description)
		}
		if len(repo.Topics) > 0 {
			fmt.Fprintf(&b, "  topics: %s\n", strings.Join(repo.Topics, ", "))
		}
	case resolved.User != nil:
		user := resolved.User
		fmt.Fprintf(&b, "User %s\n", user.Login)
		if user.Name != "" {
			fmt.Fprintf(&b, "  name: %s\n", user.Name)
		}
		fmt.Fprintf(&b, "  public repos: %d, followers: %d, following: %d\n",
			user.PublicRepos, user.Followers, user.Following)
		if user.Bio != "" {
			fmt.Fprintf(&b, "  bio: %s\n", user.Bio)
		}
		if user.Company != "" {
			fmt.Fprintf(&b, "  company: %s\n", user.Company)
		}
		if user.Location != "" {
			fmt.Fprintf(&b, "  location: %s\n", user.Location)
		}
	case len(resolved.Repositories) > 0:
		b.WriteString("Matching repositories:\n")
		for i, repo := range resolved.Repositories {
			if i == maxListedEntities {
				break
			}
			fmt.Fprintf(&b, "  %s (%s, %d stars): %s\n",
				repo.FullName, repo.Language, repo.StarsCount, repo.Description)
		}
	case len(resolved.Users) > 0:
		b.WriteString("Matching developers:\n")
		for i, user := range resolved.Users {
			if i == maxListedEntities {
				break
			}
			fmt.Fprintf(&b, "  %s\n", user.Login)
		}
	}

	return b.String()
}
