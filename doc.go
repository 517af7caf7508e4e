// Package goalfolio implements the core of a watchlist and portfolio
// tracking application: a validated position model, a store that keeps a
// daily valuation series in sync with every mutation, chart-range queries
// over that series, a persisted watchlist, and a debounced stock search.
//
// The package is a library consumed by a UI shell; the gf command in this
// repository is one such shell. Market data comes from the finnhub and
// alphavantage subpackages, persistence goes through the Storage interface.
package goalfolio
