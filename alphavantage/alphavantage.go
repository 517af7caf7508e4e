// Package alphavantage fetches intraday price series and symbol search
// results from the Alpha Vantage API (https://www.alphavantage.co/documentation).
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/goalfolio/goalfolio"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

// timestampFormat is the format of the time series keys, e.g. "2026-08-28 19:45:00".
const timestampFormat = "2006-01-02 15:04:05"

// Alpha Vantage intraday timestamps are quoted in US Eastern time.
var eastern = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Interval is a supported intraday candle interval.
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
	Interval60Min Interval = "60min"
)

// IntradayRequest selects the series to fetch. Zero values fall back to a
// 15min interval, compact output, unadjusted prices and regular trading
// hours.
type IntradayRequest struct {
	Symbol        string
	Interval      Interval
	Full          bool   // full history instead of the latest 100 points
	Adjusted      bool   // split/dividend adjusted prices
	ExtendedHours bool   // include pre/post market candles
	Month         string // optional "YYYY-MM" to query a specific month
}

// Client calls the Alpha Vantage REST API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New returns a client using the daily caching http client.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    goalfolio.NewCachingClient(),
	}
}

// NewWithClient returns a client with a custom base URL and http client,
// for tests against a local server.
func NewWithClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, http: httpClient}
}

// Fetch retrieves an intraday candle series, ordered by time ascending.
func (c *Client) Fetch(ctx context.Context, req IntradayRequest) ([]goalfolio.Candle, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_INTRADAY")
	params.Set("symbol", req.Symbol)
	interval := req.Interval
	if interval == "" {
		interval = Interval15Min
	}
	params.Set("interval", string(interval))
	params.Set("apikey", c.apiKey)
	if req.Full {
		params.Set("outputsize", "full")
	} else {
		params.Set("outputsize", "compact")
	}
	params.Set("adjusted", strconv.FormatBool(req.Adjusted))
	params.Set("extended_hours", strconv.FormatBool(req.ExtendedHours))
	if req.Month != "" {
		params.Set("month", req.Month)
	}
	addr := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	// The payload's top level maps a handful of unpredictable keys ("Meta
	// Data", "Time Series (15min)"...) to heterogeneous objects, so it is
	// parsed in two steps.
	payload := make(map[string]json.RawMessage)
	if err := goalfolio.FetchJSON(ctx, c.http, addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch candles for %q: %w", req.Symbol, err)
	}
	if err := apiError(payload); err != nil {
		return nil, fmt.Errorf("cannot fetch candles for %q: %w", req.Symbol, err)
	}

	raw, err := timeSeries(payload)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch candles for %q: %w", req.Symbol, err)
	}

	candles := make([]goalfolio.Candle, 0, len(raw))
	for stamp, fields := range raw {
		candle, err := parseCandle(stamp, fields)
		if err != nil {
			return nil, fmt.Errorf("cannot fetch candles for %q: %w", req.Symbol, err)
		}
		candles = append(candles, candle)
	}
	sort.Slice(candles, func(i, j int) bool { return candles[i].Time.Before(candles[j].Time) })
	return candles, nil
}

// Intraday fetches the default 15min regular-hours series for a symbol.
func (c *Client) Intraday(ctx context.Context, symbol string) ([]goalfolio.Candle, error) {
	return c.Fetch(ctx, IntradayRequest{Symbol: symbol})
}

// MostRecentTradingDay narrows the intraday series down to the candles of the
// last calendar day present in the response: the most recent day the market
// was open. Weekends and holidays therefore show the preceding session.
func (c *Client) MostRecentTradingDay(ctx context.Context, symbol string) ([]goalfolio.Candle, error) {
	candles, err := c.Intraday(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, nil
	}
	last := candles[len(candles)-1].Time
	lastY, lastM, lastD := last.Date()

	var day []goalfolio.Candle
	for _, candle := range candles {
		y, m, d := candle.Time.Date()
		if y == lastY && m == lastM && d == lastD {
			day = append(day, candle)
		}
	}
	return day, nil
}

// apiError surfaces the in-band failure payloads: the API answers 200 with
// an "Error Message" for bad symbols and a "Note"/"Information" when the
// rate limit is hit.
func apiError(payload map[string]json.RawMessage) error {
	for _, key := range []string{"Error Message", "Note", "Information"} {
		if raw, ok := payload[key]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil {
				return fmt.Errorf("alphavantage: %s", msg)
			}
			return fmt.Errorf("alphavantage: %s", key)
		}
	}
	return nil
}

// timeSeries locates the series object: its key embeds the interval, e.g.
// "Time Series (15min)", so it is matched by prefix.
func timeSeries(payload map[string]json.RawMessage) (map[string]map[string]string, error) {
	for key, raw := range payload {
		if len(key) >= len("Time Series") && key[:len("Time Series")] == "Time Series" {
			series := make(map[string]map[string]string)
			if err := json.Unmarshal(raw, &series); err != nil {
				return nil, fmt.Errorf("invalid time series payload: %w", err)
			}
			return series, nil
		}
	}
	return nil, fmt.Errorf("no time series in response")
}

// parseCandle decodes one sample. Field names are numbered:
//
//	"1. open", "2. high", "3. low", "4. close", "5. volume"
func parseCandle(stamp string, fields map[string]string) (goalfolio.Candle, error) {
	t, err := time.ParseInLocation(timestampFormat, stamp, eastern)
	if err != nil {
		return goalfolio.Candle{}, fmt.Errorf("invalid timestamp %q: %w", stamp, err)
	}
	candle := goalfolio.Candle{Time: t}
	for key, dst := range map[string]*float64{
		"1. open":  &candle.Open,
		"2. high":  &candle.High,
		"3. low":   &candle.Low,
		"4. close": &candle.Close,
	} {
		v, err := strconv.ParseFloat(fields[key], 64)
		if err != nil {
			return goalfolio.Candle{}, fmt.Errorf("invalid %s at %q: %w", key, stamp, err)
		}
		*dst = v
	}
	if raw, ok := fields["5. volume"]; ok {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return goalfolio.Candle{}, fmt.Errorf("invalid volume at %q: %w", stamp, err)
		}
		candle.Volume = v
	}
	return candle, nil
}

var _ goalfolio.CandleProvider = (*Client)(nil)
