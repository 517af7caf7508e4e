package alphavantage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/goalfolio/goalfolio"
)

// Search queries the SYMBOL_SEARCH endpoint and returns the best matches,
// at most limit of them (limit <= 0 means all).
//
// Matches come back with numbered field names:
//
//	{"bestMatches": [{"1. symbol": "AAPL", "2. name": "Apple Inc", ...}]}
//
// jsonpath copes with those better than struct tags would.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]goalfolio.Stock, error) {
	params := url.Values{}
	params.Set("function", "SYMBOL_SEARCH")
	params.Set("keywords", query)
	params.Set("apikey", c.apiKey)
	addr := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var payload interface{}
	if err := goalfolio.FetchJSON(ctx, c.http, addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot search symbols for %q: %w", query, err)
	}
	if obj, ok := payload.(map[string]interface{}); ok {
		for _, key := range []string{"Error Message", "Note", "Information"} {
			if msg, ok := obj[key].(string); ok {
				return nil, fmt.Errorf("cannot search symbols for %q: alphavantage: %s", query, msg)
			}
		}
	}

	symbols, err := jsonpath.Get(`$.bestMatches[*]["1. symbol"]`, payload)
	if err != nil {
		return nil, fmt.Errorf("cannot search symbols for %q: %w", query, err)
	}
	names, err := jsonpath.Get(`$.bestMatches[*]["2. name"]`, payload)
	if err != nil {
		return nil, fmt.Errorf("cannot search symbols for %q: %w", query, err)
	}
	symbolList, ok1 := symbols.([]interface{})
	nameList, ok2 := names.([]interface{})
	if !ok1 || !ok2 || len(symbolList) != len(nameList) {
		return nil, fmt.Errorf("cannot search symbols for %q: malformed bestMatches payload", query)
	}

	var stocks []goalfolio.Stock
	for i := range symbolList {
		symbol, _ := symbolList[i].(string)
		name, _ := nameList[i].(string)
		if symbol == "" {
			continue
		}
		stocks = append(stocks, goalfolio.Stock{Symbol: symbol, Name: name})
		if limit > 0 && len(stocks) == limit {
			break
		}
	}
	return stocks, nil
}

var _ goalfolio.SearchProvider = (*Client)(nil)
