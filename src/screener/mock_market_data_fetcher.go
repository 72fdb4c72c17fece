package screener

import (
	"fmt"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

type MockMarketDataFetcher struct {
	quotes      map[eventmodels.StockSymbol]*eventmodels.StockQuote
	expirations map[eventmodels.StockSymbol][]string
	chains      map[string][]*eventmodels.OptionChainTickDTO

	QuoteErr       error
	ExpirationsErr error
	ChainErr       error
}

func NewMockMarketDataFetcher() *MockMarketDataFetcher {
	return &MockMarketDataFetcher{
		quotes:      make(map[eventmodels.StockSymbol]*eventmodels.StockQuote),
		expirations: make(map[eventmodels.StockSymbol][]string),
		chains:      make(map[string][]*eventmodels.OptionChainTickDTO),
	}
}

func (m *MockMarketDataFetcher) SetQuote(quote *eventmodels.StockQuote) {
	m.quotes[quote.Symbol] = quote
}

func (m *MockMarketDataFetcher) SetExpirations(symbol eventmodels.StockSymbol, dates []string) {
	m.expirations[symbol] = dates
}

func (m *MockMarketDataFetcher) SetChain(symbol eventmodels.StockSymbol, expiration string, ticks []*eventmodels.OptionChainTickDTO) {
	m.chains[chainKey(symbol, expiration)] = ticks
}

func (m *MockMarketDataFetcher) FetchStockQuote(symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error) {
	if m.QuoteErr != nil {
		return nil, m.QuoteErr
	}

	return m.quotes[symbol], nil
}

func (m *MockMarketDataFetcher) FetchOptionExpirations(symbol eventmodels.StockSymbol) ([]string, error) {
	if m.ExpirationsErr != nil {
		return nil, m.ExpirationsErr
	}

	return m.expirations[symbol], nil
}

func (m *MockMarketDataFetcher) FetchOptionChainTicks(symbol eventmodels.StockSymbol, expiration string) ([]*eventmodels.OptionChainTickDTO, error) {
	if m.ChainErr != nil {
		return nil, m.ChainErr
	}

	return m.chains[chainKey(symbol, expiration)], nil
}

func chainKey(symbol eventmodels.StockSymbol, expiration string) string {
	return fmt.Sprintf("%s:%s", symbol, expiration)
}
