// Package search holds the per-screen search state machines. A controller
// debounces keystrokes, invokes a fetch function, and exposes paginated
// slices of the accumulated result list. One controller per screen; the
// gateway behind the fetch function is shared.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
)

// State is the controller's observable phase.
type State string

const (
	StateIdle       State = "idle"
	StateDebouncing State = "debouncing"
	StateLoading    State = "loading"
	StateSuccess    State = "success"
	StateEmpty      State = "empty"
	StateError      State = "error"
)

const (
	// DefaultDebounce is how long the query must sit unchanged before a
	// fetch fires.
	DefaultDebounce = 1500 * time.Millisecond

	// DefaultPageSize is how many results one display page holds.
	DefaultPageSize = 10

	// MinQueryLength is the shortest query that triggers a fetch. Anything
	// shorter keeps the controller idle with ShortQueryHint exposed.
	MinQueryLength = 3

	// ShortQueryHint is shown while the query is below MinQueryLength.
	ShortQueryHint = "Type at least 3 characters to search"
)

// Fetcher resolves a query into a result list. Typically a bound gateway
// method.
type Fetcher[T any] func(ctx context.Context, query string) ([]T, error)

// Snapshot is an immutable view of the controller state for rendering.
// Results holds only the current display page.
type Snapshot[T any] struct {
	State      State
	Query      string
	Hint       string
	Results    []T
	Page       int
	TotalPages int
	TotalItems int
	ErrMessage string
}

// Controller debounces keystrokes and runs fetches tagged with a monotonic
// generation counter. Any keystroke bumps the generation, so a slow
// response from an earlier query can never overwrite the state of a later
// one.
type Controller[T any] struct {
	mu       sync.Mutex
	fetch    Fetcher[T]
	debounce time.Duration
	pageSize int
	minQuery int
	logger   *logrus.Logger

	timer *time.Timer
	gen   uint64

	state   State
	query   string
	results []T
	page    int
	errMsg  string

	listeners []func(Snapshot[T])
}

// Option configures a Controller
type Option[T any] func(*Controller[T])

// WithDebounce overrides the debounce interval, used by tests
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) {
		c.debounce = d
	}
}

// WithPageSize overrides the display page size
func WithPageSize[T any](size int) Option[T] {
	return func(c *Controller[T]) {
		c.pageSize = size
	}
}

// WithLogger attaches a logger
func WithLogger[T any](logger *logrus.Logger) Option[T] {
	return func(c *Controller[T]) {
		c.logger = logger
	}
}

// NewController creates an idle controller around fetch.
func NewController[T any](fetch Fetcher[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch:    fetch,
		debounce: DefaultDebounce,
		pageSize: DefaultPageSize,
		minQuery: MinQueryLength,
		logger:   logrus.New(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers a listener invoked with a fresh snapshot after every
// state transition.
func (c *Controller[T]) OnChange(fn func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// SetQuery records a keystroke. The debounce timer restarts; only after the
// interval elapses with no further input, and only if the query is at least
// MinQueryLength long, does a fetch fire.
func (c *Controller[T]) SetQuery(query string) {
	c.mu.Lock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.query = query

	if len(query) < c.minQuery {
		c.state = StateIdle
		c.results = nil
		c.page = 0
		c.errMsg = ""
		c.notifyLocked()
		return
	}

	c.state = StateDebouncing
	gen := c.gen
	c.timer = time.AfterFunc(c.debounce, func() {
		c.load(query, gen)
	})
	c.notifyLocked()
}

// load runs the fetch for the query tagged with gen. Results arriving after
// the generation moved on are discarded.
func (c *Controller[T]) load(query string, gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state = StateLoading
	c.notifyLocked()

	// In-flight HTTP calls are not cancelled on new keystrokes; the
	// generation check below makes their responses inert instead.
	results, err := c.fetch(context.Background(), query)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}

	switch {
	case err != nil:
		c.logger.WithError(err).WithField("query", query).Warn("search fetch failed")
		c.state = StateError
		c.results = nil
		c.page = 0
		c.errMsg = apperrors.UserMessage(err)
	case len(results) == 0:
		c.state = StateEmpty
		c.results = nil
		c.page = 0
		c.errMsg = ""
	default:
		c.state = StateSuccess
		c.results = results
		c.page = 1
		c.errMsg = ""
	}
	c.notifyLocked()
}

// NextPage advances the display page, a no-op at the last page.
func (c *Controller[T]) NextPage() {
	c.mu.Lock()
	if c.state != StateSuccess || c.page >= c.totalPagesLocked() {
		c.mu.Unlock()
		return
	}
	c.page++
	c.notifyLocked()
}

// PreviousPage rewinds the display page, a no-op at page 1.
func (c *Controller[T]) PreviousPage() {
	c.mu.Lock()
	if c.state != StateSuccess || c.page <= 1 {
		c.mu.Unlock()
		return
	}
	c.page--
	c.notifyLocked()
}

// Snapshot returns the current view state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops a pending debounce timer.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Controller[T]) totalPagesLocked() int {
	if len(c.results) == 0 {
		return 0
	}
	return (len(c.results) + c.pageSize - 1) / c.pageSize
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	snap := Snapshot[T]{
		State:      c.state,
		Query:      c.query,
		Page:       c.page,
		TotalPages: c.totalPagesLocked(),
		TotalItems: len(c.results),
		ErrMessage: c.errMsg,
	}
	if c.state == StateIdle && c.query != "" && len(c.query) < c.minQuery {
		snap.Hint = ShortQueryHint
	}
	if c.state == StateSuccess {
		start := (c.page - 1) * c.pageSize
		end := start + c.pageSize
		if end > len(c.results) {
			end = len(c.results)
		}
		snap.Results = c.results[start:end]
	}
	return snap
}

// notifyLocked snapshots the state, releases the lock, and invokes the
// listeners. Callers must hold the lock and must not touch state afterward.
func (c *Controller[T]) notifyLocked() {
	snap := c.snapshotLocked()
	listeners := make([]func(Snapshot[T]), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
