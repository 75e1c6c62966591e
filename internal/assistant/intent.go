package assistant

import (
	"context"
	"regexp"
	"strings"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// Context is the GitHub data resolved for one user message. At most one
// field is populated, by whichever intent rule matched first.
type Context struct {
	Repository   *models.Repository
	User         *models.User
	Repositories []models.Repository
	Users        []models.User
}

// Empty reports whether no data was resolved.
func (c *Context) Empty() bool {
	return c == nil ||
		(c.Repository == nil && c.User == nil && len(c.Repositories) == 0 && len(c.Users) == 0)
}

// DataSource is the gateway surface the intent rules fetch through.
type DataSource interface {
	GetRepository(ctx context.Context, owner, name string) (*models.Repository, error)
	GetUserDetails(ctx context.Context, username string) (*models.User, error)
	SearchRepositories(ctx context.Context, query string) ([]models.Repository, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

var (
	repoRefPattern = regexp.MustCompile(`\b([A-Za-z\d](?:[A-Za-z\d-]*[A-Za-z\d])?)/([A-Za-z\d._-]+)\b`)
	userRefPattern = regexp.MustCompile(`@([A-Za-z\d](?:[A-Za-z\d-]*[A-Za-z\d])?)`)
)

var repoKeywords = []string{"repo", "repository", "project", "library", "framework", "find", "search", "trending"}

var devKeywords = []string{"developer", "who is", "contributor", "profile", "engineer", "programmer"}

// stopwords are dropped before a keyword-triggered search so the remainder
// approximates the entity the user is asking about.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "me": true, "my": true, "you": true,
	"show": true, "find": true, "search": true, "for": true, "in": true,
	"on": true, "of": true, "about": true, "some": true, "any": true,
	"best": true, "top": true, "good": true, "great": true, "please": true,
	"can": true, "what": true, "which": true, "are": true, "is": true,
	"repo": true, "repos": true, "repository": true, "repositories": true,
	"project": true, "projects": true, "library": true, "libraries": true,
	"framework": true, "frameworks": true, "trending": true, "popular": true,
	"developer": true, "developers": true, "contributor": true,
	"contributors": true, "who": true, "profile": true, "user": true,
	"engineer": true, "engineers": true, "programmer": true,
	"programmers": true,
}

// intentRule pairs a cheap predicate with a resolver. Rules run in order
// and the first resolver that succeeds wins; a resolver failure (entity
// does not exist, network error) falls through to the next rule rather
// than aborting the chat turn.
type intentRule struct {
	name    string
	match   func(message string) bool
	resolve func(ctx context.Context, data DataSource, message string) (*Context, bool)
}

var intentRules = []intentRule{
	{
		name: "repository reference",
		match: func(message string) bool {
			return repoRefPattern.MatchString(message)
		},
		resolve: func(ctx context.Context, data DataSource, message string) (*Context, bool) {
			m := repoRefPattern.FindStringSubmatch(message)
			repo, err := data.GetRepository(ctx, m[1], m[2])
			if err != nil {
				return nil, false
			}
			return &Context{Repository: repo}, true
		},
	},
	{
		name: "user reference",
		match: func(message string) bool {
			return userRefPattern.MatchString(message)
		},
		resolve: func(ctx context.Context, data DataSource, message string) (*Context, bool) {
			m := userRefPattern.FindStringSubmatch(message)
			user, err := data.GetUserDetails(ctx, m[1])
			if err != nil {
				return nil, false
			}
			return &Context{User: user}, true
		},
	},
	{
		name: "repository keywords",
		match: func(message string) bool {
			return containsAny(message, repoKeywords)
		},
		resolve: func(ctx context.Context, data DataSource, message string) (*Context, bool) {
			query := stripStopwords(message)
			if len(query) <= 2 {
				return nil, false
			}
			repos, err := data.SearchRepositories(ctx, query)
			if err != nil || len(repos) == 0 {
				return nil, false
			}
			return &Context{Repositories: repos}, true
		},
	},
	{
		name: "developer keywords",
		match: func(message string) bool {
			return containsAny(message, devKeywords)
		},
		resolve: func(ctx context.Context, data DataSource, message string) (*Context, bool) {
			query := stripStopwords(message)
			if len(query) <= 2 {
				return nil, false
			}
			users, err := data.SearchUsers(ctx, query)
			if err != nil || len(users) == 0 {
				return nil, false
			}
			return &Context{Users: users}, true
		},
	},
}

// resolveContext walks the ordered rules and returns the first successfully
// resolved context, or nil when no rule applies.
func resolveContext(ctx context.Context, data DataSource, message string) *Context {
	for _, rule := range intentRules {
		if !rule.match(message) {
			continue
		}
		if resolved, ok := rule.resolve(ctx, data, message); ok {
			return resolved
		}
	}
	return nil
}

func containsAny(message string, keywords []string) bool {
	lowered := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func stripStopwords(message string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, ".,!?\"'")
		if word == "" || stopwords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
