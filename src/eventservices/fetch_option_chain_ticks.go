package eventservices

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
	"github.com/pompousraccoon04/lst-screener-api/src/utils"
)

// FetchOptionChainTicks fetches the full chain for one expiration. Greeks
// are requested inline since delta and mid IV are mandatory inputs for the
// screen.
func (s *TradierMarketDataService) FetchOptionChainTicks(symbol eventmodels.StockSymbol, expiration string) ([]*eventmodels.OptionChainTickDTO, error) {
	client := newHTTPClient()

	req, err := s.newRequest(s.OptionChainURL)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChainTicks: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("expiration", expiration)
	q.Add("greeks", "true")
	req.URL.RawQuery = q.Encode()

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChainTicks: failed to fetch option chain: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchOptionChainTicks: failed to fetch option chain, http code %v", res.Status)
	}

	bytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChainTicks: failed to read response body: %w", err)
	}

	ticks, err := utils.ParseTradierResponse[*eventmodels.OptionChainTickDTO](bytes)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChainTicks: failed to parse response: %w", err)
	}

	return ticks, nil
}
