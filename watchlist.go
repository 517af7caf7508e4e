package goalfolio

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Stock is a watchlist entry: a ticker symbol and its display name.
type Stock struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// WatchlistStore owns the list of saved tickers. Seeding is an explicit
// policy decided by the caller: pass nil for no seed, or a list applied only
// on first run, when the persisted key has never been written (an explicitly
// emptied watchlist stays empty).
type WatchlistStore struct {
	mu        sync.Mutex
	storage   Storage
	stocks    []Stock
	observers []func()
}

// OpenWatchlist loads the persisted watchlist. Corrupt bytes degrade to an
// empty list.
func OpenWatchlist(storage Storage, seed []Stock) *WatchlistStore {
	s := &WatchlistStore{storage: storage}

	data, ok, err := storage.Get(KeyWatchlist)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("cannot read watchlist, starting empty")
	case !ok:
		if len(seed) > 0 {
			s.stocks = append(s.stocks, seed...)
			s.persist()
		}
	default:
		stocks, err := decodeStocks(data)
		if err != nil {
			log.Warn().Err(err).Msg("cannot decode watchlist, starting empty")
		} else {
			s.stocks = stocks
		}
	}
	return s
}

// Save appends a ticker to the watchlist and persists.
func (s *WatchlistStore) Save(symbol, name string) {
	s.mu.Lock()
	s.stocks = append(s.stocks, Stock{Symbol: strings.ToUpper(strings.TrimSpace(symbol)), Name: name})
	s.persist()
	s.mu.Unlock()
	s.notify()
}

// Remove deletes all entries with that symbol, ignoring case. Removing an
// unknown symbol is a no-op.
func (s *WatchlistStore) Remove(symbol string) {
	s.mu.Lock()
	kept := s.stocks[:0]
	removed := false
	for _, st := range s.stocks {
		if strings.EqualFold(st.Symbol, symbol) {
			removed = true
			continue
		}
		kept = append(kept, st)
	}
	s.stocks = kept
	if removed {
		s.persist()
	}
	s.mu.Unlock()
	if removed {
		s.notify()
	}
}

// IsSaved reports whether the symbol is on the watchlist, ignoring case.
func (s *WatchlistStore) IsSaved(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.stocks {
		if strings.EqualFold(st.Symbol, symbol) {
			return true
		}
	}
	return false
}

// Stocks returns a copy of the watchlist in insertion order.
func (s *WatchlistStore) Stocks() []Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Stock(nil), s.stocks...)
}

// Subscribe registers a callback fired synchronously after each successful
// mutation.
func (s *WatchlistStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *WatchlistStore) notify() {
	s.mu.Lock()
	observers := append(([]func())(nil), s.observers...)
	s.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}

// persist writes the list best effort; callers must hold the mutex.
func (s *WatchlistStore) persist() {
	data, err := encodeStocks(s.stocks)
	if err != nil {
		log.Warn().Err(err).Msg("cannot encode watchlist")
		return
	}
	if err := s.storage.Set(KeyWatchlist, data); err != nil {
		log.Warn().Err(err).Msg("cannot persist watchlist")
	}
}
