package eventservices

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
	"github.com/pompousraccoon04/lst-screener-api/src/utils"
)

// FetchOptionExpirations returns the available expiration dates for a symbol
// in upstream order, formatted YYYY-MM-DD. Symbols without listed options
// yield an empty slice.
func (s *TradierMarketDataService) FetchOptionExpirations(symbol eventmodels.StockSymbol) ([]string, error) {
	client := newHTTPClient()

	req, err := s.newRequest(s.OptionExpirationsURL)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionExpirations: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	req.URL.RawQuery = q.Encode()

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionExpirations: failed to fetch expirations: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchOptionExpirations: failed to fetch expirations, http code %v", res.Status)
	}

	bytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionExpirations: failed to read response body: %w", err)
	}

	dates, err := utils.ParseTradierResponse[string](bytes)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionExpirations: failed to parse response: %w", err)
	}

	return dates, nil
}
