package eventservices

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

// FetchStockQuote fetches the current quote for one symbol. A well-formed
// response that carries no quote (unknown symbol) returns (nil, nil).
func (s *TradierMarketDataService) FetchStockQuote(symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error) {
	client := newHTTPClient()

	req, err := s.newRequest(s.StockQuotesURL)
	if err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbols", symbol.String())
	req.URL.RawQuery = q.Encode()

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to fetch quote: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchStockQuote: failed to fetch quote, http code %v", res.Status)
	}

	var dto eventmodels.StockQuotesDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to decode json: %w", err)
	}

	quotes, err := dto.Parse()
	if err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to parse response: %w", err)
	}

	if len(quotes) == 0 {
		return nil, nil
	}

	return quotes[0].ToModel(), nil
}
