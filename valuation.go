package goalfolio

import "github.com/shopspring/decimal"

// TotalOf sums the market value of all positions as a raw number, mixing
// currencies. Summing USD and token amounts as raw values is a knowing
// simplification for the headline figure; CurrencyTotals gives the exact
// per-currency breakdown.
func TotalOf(positions []Position) decimal.Decimal {
	total := decimal.Decimal{}
	for _, p := range positions {
		total = total.Add(p.MarketValue().Amount())
	}
	return total
}

// CurrencyTotals sums market values per currency code.
func CurrencyTotals(positions []Position) map[string]Money {
	totals := make(map[string]Money)
	for _, p := range positions {
		totals[p.Currency()] = totals[p.Currency()].Add(p.MarketValue())
	}
	return totals
}

// Revalue computes the total market value of the positions and records it in
// the series under the given day key, overwriting any earlier value for that
// exact day. Past day entries are never re-derived from the current position
// list: the series is an append/overwrite log, so removing a position today
// does not rewrite yesterday's recorded total.
func Revalue(positions []Position, on Date, series *History[float64]) float64 {
	total := TotalOf(positions).InexactFloat64()
	series.Append(on, total)
	return total
}
