package goalfolio

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PositionStore is the sole owner of the position list and its valuation
// series. Every mutation recomputes today's total, upserts it into the
// series, persists both blobs and then notifies subscribers. Mutations are
// atomic with respect to their own read-modify-write-persist sequence; the
// store expects a single logical writer.
type PositionStore struct {
	mu        sync.Mutex
	storage   Storage
	positions []Position
	series    *History[float64]
	observers []func()

	// today is swappable in tests.
	today func() Date
}

// OpenPositionStore loads the persisted position list and valuation series.
// Corrupt or absent blobs degrade to an empty starting state, never an error:
// the store must always become usable. After loading, today's valuation entry
// is recomputed and persisted.
func OpenPositionStore(storage Storage) *PositionStore {
	s := &PositionStore{
		storage: storage,
		series:  new(History[float64]),
		today:   Today,
	}

	if data, ok, err := storage.Get(KeyPositions); err != nil {
		log.Warn().Err(err).Msg("cannot read positions, starting empty")
	} else if ok {
		positions, err := decodePositions(data)
		if err != nil {
			log.Warn().Err(err).Msg("cannot decode positions, starting empty")
		} else {
			s.positions = positions
		}
	}

	if data, ok, err := storage.Get(KeyValuations); err != nil {
		log.Warn().Err(err).Msg("cannot read valuations, starting empty")
	} else if ok {
		series, err := decodeValuations(data)
		if err != nil {
			log.Warn().Err(err).Msg("cannot decode valuations, starting empty")
		} else {
			s.series = series
		}
	}

	s.mu.Lock()
	s.revalueAndPersist()
	s.mu.Unlock()
	return s
}

// AddCash records a cash movement. The amount is already signed: negative for
// a withdrawal. The unit price of cash is the identity multiplier 1.
func (s *PositionStore) AddCash(amount Quantity, currency, name string) Position {
	p := newPosition(Cash, "", name, amount, M(1, normalizeCurrency(currency)), "")
	s.add(p)
	return p
}

// AddEquity records an equity position; shares are already signed (negative
// for a sale).
func (s *PositionStore) AddEquity(symbol, name string, shares Quantity, unitPrice decimal.Decimal, currency, notes string) Position {
	p := newPosition(Equities, strings.ToUpper(symbol), name, shares, M(unitPrice, normalizeCurrency(currency)), notes)
	s.add(p)
	return p
}

// AddDigitalAsset records a digital-asset position; units are already signed.
func (s *PositionStore) AddDigitalAsset(symbol, name string, units Quantity, unitPrice decimal.Decimal, currency, notes string) Position {
	p := newPosition(DigitalAssets, strings.ToUpper(symbol), name, units, M(unitPrice, normalizeCurrency(currency)), notes)
	s.add(p)
	return p
}

// AddOther records a position that is neither cash, equity nor digital asset.
func (s *PositionStore) AddOther(name string, amount Quantity, unitPrice decimal.Decimal, currency, notes string) Position {
	p := newPosition(Other, "", name, amount, M(unitPrice, normalizeCurrency(currency)), notes)
	s.add(p)
	return p
}

// Add validates nothing and appends the given position as-is; use a
// PositionForm to build validated positions from raw input.
func (s *PositionStore) Add(p Position) { s.add(p) }

func (s *PositionStore) add(p Position) {
	s.mu.Lock()
	s.positions = append(s.positions, p)
	s.revalueAndPersist()
	s.mu.Unlock()
	s.notify()
}

// Remove deletes all positions matching the predicate, then revalues and
// persists. Removing nothing is a no-op, not an error.
func (s *PositionStore) Remove(match func(Position) bool) int {
	s.mu.Lock()
	kept := s.positions[:0]
	removed := 0
	for _, p := range s.positions {
		if match(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.positions = kept
	if removed > 0 {
		s.revalueAndPersist()
	}
	s.mu.Unlock()
	if removed > 0 {
		s.notify()
	}
	return removed
}

// RemoveSymbol removes all positions whose symbol matches, ignoring case.
func (s *PositionStore) RemoveSymbol(symbol string) int {
	return s.Remove(func(p Position) bool {
		return strings.EqualFold(p.Symbol, symbol)
	})
}

// TotalMarketValue sums the market value of all current positions. It is
// recomputed on every call, never cached across mutations, so it is always
// consistent with the current list.
func (s *PositionStore) TotalMarketValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalOf(s.positions)
}

// CurrencyTotals returns the per-currency market value subtotals.
func (s *PositionStore) CurrencyTotals() map[string]Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CurrencyTotals(s.positions)
}

// Positions returns a copy of the current list in insertion order.
func (s *PositionStore) Positions() []Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Position(nil), s.positions...)
}

// Valuations returns a copy of the daily valuation series.
func (s *PositionStore) Valuations() *History[float64] {
	s.mu.Lock()
	defer s.mu.Unlock()
	series := new(History[float64])
	for on, v := range s.series.Values() {
		series.Append(on, v)
	}
	return series
}

// Subscribe registers a callback fired synchronously after each successful
// mutation. The store is unlocked when callbacks run.
func (s *PositionStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *PositionStore) notify() {
	s.mu.Lock()
	observers := append(([]func())(nil), s.observers...)
	s.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}

// revalueAndPersist recomputes today's total, upserts it in the series and
// writes both blobs. Persistence is best effort: a write failure leaves the
// in-memory state authoritative until the next successful write, it is logged
// and never surfaced as fatal. Callers must hold the mutex.
func (s *PositionStore) revalueAndPersist() {
	Revalue(s.positions, s.today(), s.series)

	if data, err := encodePositions(s.positions); err != nil {
		log.Warn().Err(err).Msg("cannot encode positions")
	} else if err := s.storage.Set(KeyPositions, data); err != nil {
		log.Warn().Err(err).Msg("cannot persist positions")
	}

	if data, err := encodeValuations(s.series); err != nil {
		log.Warn().Err(err).Msg("cannot encode valuations")
	} else if err := s.storage.Set(KeyValuations, data); err != nil {
		log.Warn().Err(err).Msg("cannot persist valuations")
	}
}
