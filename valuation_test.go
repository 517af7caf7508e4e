package goalfolio

import "testing"

func testPositions() []Position {
	return []Position{
		newPosition(Equities, "AAPL", "Apple Inc", Q(10), M(150, "USD"), ""),
		newPosition(Cash, "", "Savings", Q(500), M(1, "USD"), ""),
		newPosition(Cash, "", "Livret", Q(300), M(1, "EUR"), ""),
	}
}

func TestTotalOf(t *testing.T) {
	total := TotalOf(testPositions())
	// Cross-currency raw sum: 10*150 + 500 + 300.
	if total.InexactFloat64() != 2300 {
		t.Errorf("TotalOf = %s want 2300", total)
	}
	if !TotalOf(nil).IsZero() {
		t.Error("TotalOf(nil) must be zero")
	}
}

func TestTotalOfOrderIndependent(t *testing.T) {
	positions := testPositions()
	reversed := []Position{positions[2], positions[1], positions[0]}
	if !TotalOf(positions).Equal(TotalOf(reversed)) {
		t.Error("total depends on position order")
	}
}

func TestCurrencyTotals(t *testing.T) {
	totals := CurrencyTotals(testPositions())
	if len(totals) != 2 {
		t.Fatalf("got %d currencies want 2", len(totals))
	}
	if !totals["USD"].Equal(M(2000, "USD")) {
		t.Errorf("USD total = %s want 2000", totals["USD"])
	}
	if !totals["EUR"].Equal(M(300, "EUR")) {
		t.Errorf("EUR total = %s want 300", totals["EUR"])
	}
}

func TestRevalueUpsertsDay(t *testing.T) {
	series := new(History[float64])
	day := MustParseDate("2025-07-01")

	positions := testPositions()
	Revalue(positions, day, series)
	positions = positions[:1] // drop the cash
	Revalue(positions, day, series)

	if series.Len() != 1 {
		t.Fatalf("series has %d points want 1: same-day revalue must overwrite", series.Len())
	}
	if v, _ := series.Get(day); v != 1500 {
		t.Errorf("value = %v want 1500", v)
	}
}

func TestRevalueNeverRewritesPastDays(t *testing.T) {
	series := new(History[float64])
	day1, day2 := MustParseDate("2025-07-01"), MustParseDate("2025-07-02")

	positions := testPositions()
	Revalue(positions, day1, series)

	// The next day every position is gone; yesterday's record must survive.
	Revalue(nil, day2, series)

	if v, _ := series.Get(day1); v != 2300 {
		t.Errorf("past value = %v want 2300", v)
	}
	if v, _ := series.Get(day2); v != 0 {
		t.Errorf("today value = %v want 0", v)
	}
}
