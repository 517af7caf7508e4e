package goalfolio

import (
	"context"
	"time"
)

// Collaborator interfaces for the external market data providers. The
// library consumes these; the finnhub and alphavantage packages implement
// them.

// Quote is a snapshot of a symbol's trading day.
type Quote struct {
	Current       float64
	High          float64
	Low           float64
	Open          float64
	PreviousClose float64
}

// QuoteProvider fetches the current quote for a symbol.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// Candle is one OHLCV sample of an intraday price series.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// CandleProvider fetches intraday candles for a symbol, ordered by time
// ascending. MostRecentTradingDay narrows the series down to the last
// calendar day that has data, which is what an intraday chart displays.
type CandleProvider interface {
	Intraday(ctx context.Context, symbol string) ([]Candle, error)
	MostRecentTradingDay(ctx context.Context, symbol string) ([]Candle, error)
}
