package goalfolio

import "sync"

// LoadingTracker counts in-flight operations so a UI shell can show a single
// loading indicator. Begin returns a release func that must run on every exit
// path; it is safe to call more than once, so `defer release()` plus an early
// release both work. Overlapping operations keep the indicator up until the
// last one releases.
type LoadingTracker struct {
	mu        sync.Mutex
	active    int
	observers []func(bool)
}

// Begin marks the start of an operation and returns its release func.
func (t *LoadingTracker) Begin() (release func()) {
	t.mu.Lock()
	t.active++
	show := t.active == 1
	observers := t.snapshot()
	t.mu.Unlock()
	if show {
		for _, fn := range observers {
			fn(true)
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			t.active--
			hide := t.active == 0
			observers := t.snapshot()
			t.mu.Unlock()
			if hide {
				for _, fn := range observers {
					fn(false)
				}
			}
		})
	}
}

// Loading reports whether any operation is in flight.
func (t *LoadingTracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active > 0
}

// Subscribe registers a callback fired when the indicator turns on or off.
func (t *LoadingTracker) Subscribe(fn func(bool)) {
	t.mu.Lock()
	t.observers = append(t.observers, fn)
	t.mu.Unlock()
}

func (t *LoadingTracker) snapshot() []func(bool) {
	return append(([]func(bool))(nil), t.observers...)
}
