package goalfolio

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// This file contains the codecs for the persisted blobs. Each blob is a JSON
// object carrying an explicit schema version, so a future format change does
// not have to guess "no version" as version zero. Field order is kept stable
// with jsonObjectWriter so the files stay diff-friendly.

// Storage keys for the persisted blobs.
const (
	KeyPositions  = "positions"
	KeyValuations = "valuations"
	KeyWatchlist  = "watchlist"
)

const schemaVersion = 1

// jposition is the json proxy for a Position.
type jposition struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Symbol    string          `json:"symbol,omitempty"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Currency  string          `json:"currency"`
	Notes     string          `json:"notes,omitempty"`
	DateAdded time.Time       `json:"dateAdded"`
}

func encodePositions(positions []Position) ([]byte, error) {
	jpositions := make([]json.Marshaler, 0, len(positions))
	for _, p := range positions {
		var w jsonObjectWriter
		w.Append("id", p.ID)
		w.Append("category", p.Category.String())
		w.Optional("symbol", p.Symbol)
		w.Append("name", p.Name)
		w.Append("quantity", p.Quantity)
		w.Append("unitPrice", p.UnitPrice.Amount())
		w.Append("currency", p.Currency())
		w.Optional("notes", p.Notes)
		w.Append("dateAdded", p.DateAdded)
		jpositions = append(jpositions, &w)
	}
	var blob jsonObjectWriter
	blob.Append("version", schemaVersion)
	blob.Append("positions", jpositions)
	return blob.MarshalJSON()
}

func decodePositions(data []byte) ([]Position, error) {
	var blob struct {
		Version   int         `json:"version"`
		Positions []jposition `json:"positions"`
	}
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("corrupt positions blob: %w", err)
	}
	if blob.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported positions schema version %d", blob.Version)
	}
	positions := make([]Position, 0, len(blob.Positions))
	for _, jp := range blob.Positions {
		cat, err := ParseCategory(jp.Category)
		if err != nil {
			return nil, fmt.Errorf("corrupt positions blob: %w", err)
		}
		positions = append(positions, Position{
			ID:        jp.ID,
			Category:  cat,
			Symbol:    jp.Symbol,
			Name:      jp.Name,
			Quantity:  Q(jp.Quantity),
			UnitPrice: M(jp.UnitPrice, jp.Currency),
			Notes:     jp.Notes,
			DateAdded: jp.DateAdded,
		})
	}
	return positions, nil
}

func encodeValuations(series *History[float64]) ([]byte, error) {
	points := make([]json.Marshaler, 0, series.Len())
	for on, value := range series.Values() {
		var w jsonObjectWriter
		w.Append("on", on)
		w.Append("value", value)
		points = append(points, &w)
	}
	var blob jsonObjectWriter
	blob.Append("version", schemaVersion)
	blob.Append("valuations", points)
	return blob.MarshalJSON()
}

func decodeValuations(data []byte) (*History[float64], error) {
	var blob struct {
		Version    int `json:"version"`
		Valuations []struct {
			On    Date    `json:"on"`
			Value float64 `json:"value"`
		} `json:"valuations"`
	}
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("corrupt valuations blob: %w", err)
	}
	if blob.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported valuations schema version %d", blob.Version)
	}
	series := new(History[float64])
	for _, p := range blob.Valuations {
		series.Append(p.On, p.Value)
	}
	return series, nil
}

func encodeStocks(stocks []Stock) ([]byte, error) {
	jstocks := make([]json.Marshaler, 0, len(stocks))
	for _, s := range stocks {
		var w jsonObjectWriter
		w.Append("symbol", s.Symbol)
		w.Append("name", s.Name)
		jstocks = append(jstocks, &w)
	}
	var blob jsonObjectWriter
	blob.Append("version", schemaVersion)
	blob.Append("stocks", jstocks)
	return blob.MarshalJSON()
}

func decodeStocks(data []byte) ([]Stock, error) {
	var blob struct {
		Version int     `json:"version"`
		Stocks  []Stock `json:"stocks"`
	}
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("corrupt watchlist blob: %w", err)
	}
	if blob.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported watchlist schema version %d", blob.Version)
	}
	return blob.Stocks, nil
}
