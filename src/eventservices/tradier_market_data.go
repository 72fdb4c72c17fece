package eventservices

import (
	"fmt"
	"net/http"
	"time"
)

// TradierMarketDataService issues read-only requests against the Tradier
// market data endpoints. The base URL and bearer token are fixed at
// construction; handlers never read credentials from ambient state.
type TradierMarketDataService struct {
	StockQuotesURL       string
	OptionExpirationsURL string
	OptionChainURL       string
	BearerToken          string
}

func NewTradierMarketDataService(baseURL, bearerToken string) *TradierMarketDataService {
	return &TradierMarketDataService{
		StockQuotesURL:       fmt.Sprintf("%s/markets/quotes", baseURL),
		OptionExpirationsURL: fmt.Sprintf("%s/markets/options/expirations", baseURL),
		OptionChainURL:       fmt.Sprintf("%s/markets/options/chains", baseURL),
		BearerToken:          bearerToken,
	}
}

func (s *TradierMarketDataService) newRequest(url string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", s.BearerToken))

	return req, nil
}

func newHTTPClient() http.Client {
	return http.Client{
		Timeout: 10 * time.Second,
	}
}
