package goalfolio

import "testing"

var seed = []Stock{{Symbol: "AAPL", Name: "Apple Inc"}, {Symbol: "MSFT", Name: "Microsoft"}}

func TestWatchlistSeedOnFirstRun(t *testing.T) {
	storage := NewMemStorage()
	s := OpenWatchlist(storage, seed)
	if got := s.Stocks(); len(got) != 2 {
		t.Fatalf("got %d stocks want the seed", len(got))
	}

	// The seed is persisted, so a reopen sees the same list.
	s = OpenWatchlist(storage, nil)
	if got := s.Stocks(); len(got) != 2 {
		t.Errorf("reopen lost the seeded list: %v", got)
	}
}

func TestWatchlistSeedNotReappliedAfterClear(t *testing.T) {
	storage := NewMemStorage()
	s := OpenWatchlist(storage, seed)
	s.Remove("AAPL")
	s.Remove("MSFT")

	// The key exists (an empty list), so the seed must not come back.
	s = OpenWatchlist(storage, seed)
	if got := s.Stocks(); len(got) != 0 {
		t.Errorf("seed reapplied over an explicitly emptied watchlist: %v", got)
	}
}

func TestWatchlistSaveUppercasesSymbol(t *testing.T) {
	s := OpenWatchlist(NewMemStorage(), nil)
	s.Save(" nvda ", "NVIDIA Corporation")
	got := s.Stocks()
	if len(got) != 1 || got[0].Symbol != "NVDA" {
		t.Errorf("Stocks = %v", got)
	}
	if !s.IsSaved("nVdA") {
		t.Error("IsSaved must ignore case")
	}
}

func TestWatchlistRemoveIgnoresCaseAndUnknown(t *testing.T) {
	s := OpenWatchlist(NewMemStorage(), seed)
	s.Remove("aapl")
	if s.IsSaved("AAPL") {
		t.Error("AAPL still saved after Remove")
	}
	s.Remove("UNKNOWN") // must be a silent no-op
	if got := s.Stocks(); len(got) != 1 || got[0].Symbol != "MSFT" {
		t.Errorf("Stocks = %v", got)
	}
}

func TestWatchlistCorruptBlobStartsEmpty(t *testing.T) {
	storage := NewMemStorage()
	if err := storage.Set(KeyWatchlist, []byte("garbage")); err != nil {
		t.Fatal(err)
	}
	s := OpenWatchlist(storage, seed)
	if got := s.Stocks(); len(got) != 0 {
		t.Errorf("corrupt blob must degrade to empty, got %v", got)
	}
}

func TestWatchlistNotifiesObservers(t *testing.T) {
	s := OpenWatchlist(NewMemStorage(), nil)
	fired := 0
	s.Subscribe(func() { fired++ })

	s.Save("AAPL", "Apple Inc")
	s.Remove("AAPL")
	s.Remove("AAPL") // no-op, must not notify
	if fired != 2 {
		t.Errorf("observer fired %d times want 2", fired)
	}
}
