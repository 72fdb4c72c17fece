package screener

import (
	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

// MarketDataFetcher is the upstream surface the screen depends on. Satisfied
// by eventservices.TradierMarketDataService.
type MarketDataFetcher interface {
	FetchStockQuote(symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error)
	FetchOptionExpirations(symbol eventmodels.StockSymbol) ([]string, error)
	FetchOptionChainTicks(symbol eventmodels.StockSymbol, expiration string) ([]*eventmodels.OptionChainTickDTO, error)
}
