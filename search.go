package goalfolio

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultSearchDebounce is the pause required after the last keystroke before
// a search request is issued.
const DefaultSearchDebounce = 250 * time.Millisecond

// SearchProvider looks up stocks matching a query against an external data
// provider.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]Stock, error)
}

// Searcher debounces user search input against a provider. Each new query
// cancels the pending timer and any in-flight request; only the result of the
// most recently issued, non-cancelled request reaches the results callback,
// so a stale response can never overwrite a fresher one. Cancellation is a
// normal outcome and is never reported as an error.
type Searcher struct {
	provider SearchProvider
	delay    time.Duration
	limit    int
	loading  *LoadingTracker
	onResult func([]Stock, error)

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// SearcherOption customizes a Searcher.
type SearcherOption func(*Searcher)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) SearcherOption {
	return func(s *Searcher) { s.delay = d }
}

// WithLimit caps the number of results requested from the provider.
func WithLimit(n int) SearcherOption {
	return func(s *Searcher) { s.limit = n }
}

// WithLoadingTracker ties request lifetimes to a loading indicator. The
// indicator is released on every exit path, error and cancellation included.
func WithLoadingTracker(t *LoadingTracker) SearcherOption {
	return func(s *Searcher) { s.loading = t }
}

// NewSearcher returns a searcher delivering results to onResult. The callback
// runs on the request goroutine; a provider failure is delivered as nil
// results plus the error.
func NewSearcher(provider SearchProvider, onResult func([]Stock, error), opts ...SearcherOption) *Searcher {
	s := &Searcher{
		provider: provider,
		delay:    DefaultSearchDebounce,
		limit:    10,
		onResult: onResult,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetQuery registers a new keystroke. The pending request, if any, is
// superseded: its timer is stopped and its in-flight request cancelled. An
// empty query only cancels, it issues nothing.
func (s *Searcher) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.supersede()
	if query == "" {
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() { s.run(gen, query) })
}

// Close cancels all pending and in-flight work, silently. Late results are
// dropped. The searcher stays closed.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersede()
	s.closed = true
}

// supersede invalidates the previous request; callers must hold the mutex.
func (s *Searcher) supersede() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// run fires after the debounce pause elapsed without a newer keystroke.
func (s *Searcher) run(gen uint64, query string) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	release := func() {}
	if s.loading != nil {
		release = s.loading.Begin()
	}
	defer release()

	results, err := s.provider.Search(ctx, query, s.limit)

	s.mu.Lock()
	stale := s.closed || gen != s.gen || ctx.Err() != nil
	s.mu.Unlock()
	if stale || errors.Is(err, context.Canceled) {
		// Superseded or cancelled: drop the outcome unconditionally.
		return
	}
	if err != nil {
		s.onResult(nil, err)
		return
	}
	s.onResult(results, nil)
}
