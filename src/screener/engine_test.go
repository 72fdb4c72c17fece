package screener

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

func quoteFixture(symbol string, price, volume float64) *eventmodels.StockQuote {
	return &eventmodels.StockQuote{
		Symbol:      eventmodels.NewStockSymbol(symbol),
		LastPrice:   price,
		Volume:      volume,
		Description: fmt.Sprintf("%s Inc", symbol),
	}
}

// seedQualifying wires a quote, one 35 DTE expiration and a compliant put so
// the ticker passes the full screen.
func seedQualifying(fetcher *MockMarketDataFetcher, symbol string, price float64, midIv float64) {
	sym := eventmodels.NewStockSymbol(symbol)
	fetcher.SetQuote(quoteFixture(symbol, price, 15_000_000))
	fetcher.SetExpirations(sym, []string{expDate(35)})
	fetcher.SetChain(sym, expDate(35), []*eventmodels.OptionChainTickDTO{
		putTick(price-2.5, 1.10, 1.30, -0.25, midIv, 500),
	})
}

func TestScreenTicker(t *testing.T) {
	symbol := eventmodels.NewStockSymbol("KO")

	t.Run("quote fetch error", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		fetcher.QuoteErr = fmt.Errorf("connection refused")
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "Unable to fetch quote", result.Reason)
		assert.Nil(t, result.Price)
		assert.Nil(t, result.VolumeMillions)
	})

	t.Run("quote missing", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "Unable to fetch quote", result.Reason)
	})

	t.Run("price below range short-circuits", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		fetcher.SetQuote(quoteFixture("KO", 45.00, 15_000_000))
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "Price $45.00 outside LST range ($50-$200)", result.Reason)
		assert.Equal(t, 45.0, *result.Price)
		assert.Equal(t, 15.0, *result.VolumeMillions)
		assert.Nil(t, result.ImpliedVolatility)
		assert.Empty(t, result.IVStatus)
		assert.Nil(t, result.BestOpportunity)
		assert.Zero(t, result.TotalOpportunities)
	})

	t.Run("price above range short-circuits", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		fetcher.SetQuote(quoteFixture("KO", 250.00, 15_000_000))
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Contains(t, result.Reason, "outside LST range")
	})

	t.Run("volume below minimum short-circuits", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		fetcher.SetQuote(quoteFixture("KO", 62.50, 5_000_000))
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "Volume 5.0M below LST minimum (10M)", result.Reason)
		assert.Equal(t, 62.5, *result.Price)
		assert.Nil(t, result.ImpliedVolatility)
		assert.Empty(t, result.IVStatus)
	})

	t.Run("no qualifying puts", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		fetcher.SetQuote(quoteFixture("KO", 62.50, 15_000_000))
		fetcher.SetExpirations(symbol, []string{expDate(35)})
		fetcher.SetChain(symbol, expDate(35), []*eventmodels.OptionChainTickDTO{
			putTick(60, 1.10, 1.30, -0.50, 0.32, 500),
		})
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "No delta 0.20-0.30 puts found in 30-45 DTE range", result.Reason)
		assert.NotNil(t, result.ImpliedVolatility)
		assert.NotEmpty(t, result.IVStatus)
		assert.Nil(t, result.BestOpportunity)
	})

	t.Run("fully qualified", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		seedQualifying(fetcher, "KO", 62.50, 0.32)
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.True(t, result.Qualified)
		assert.Empty(t, result.Reason)
		assert.Equal(t, 62.5, *result.Price)
		assert.Equal(t, 15.0, *result.VolumeMillions)
		assert.Equal(t, 32.0, *result.ImpliedVolatility)
		assert.Equal(t, "IV 32.00% in LST range (25-45%)", result.IVStatus)
		assert.Equal(t, "KO Inc", result.Description)
		assert.NotNil(t, result.BestOpportunity)
		assert.Equal(t, 1, result.TotalOpportunities)
		assert.Len(t, result.TopOpportunities, 1)
	})

	t.Run("IV below minimum disqualifies but keeps opportunities", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		seedQualifying(fetcher, "KO", 62.50, 0.20)
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "IV 20.00% below LST minimum (25%)", result.IVStatus)
		assert.NotNil(t, result.BestOpportunity)
	})

	t.Run("IV above maximum disqualifies", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		seedQualifying(fetcher, "KO", 62.50, 0.60)
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.False(t, result.Qualified)
		assert.Equal(t, "IV 60.00% above LST maximum (45%)", result.IVStatus)
	})

	t.Run("top opportunities capped at five", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		fetcher.SetQuote(quoteFixture("KO", 62.50, 15_000_000))
		fetcher.SetExpirations(symbol, []string{expDate(35)})

		var ticks []*eventmodels.OptionChainTickDTO
		for i := 0; i < 7; i++ {
			ticks = append(ticks, putTick(56+float64(i)*0.5, 1.00+float64(i)*0.1, 1.20+float64(i)*0.1, -0.25, 0.32, 100))
		}
		fetcher.SetChain(symbol, expDate(35), ticks)
		s := newTestScreener(fetcher)

		result := s.ScreenTicker(symbol)
		assert.Equal(t, 7, result.TotalOpportunities)
		assert.Len(t, result.TopOpportunities, 5)
		assert.Equal(t, result.TopOpportunities[0], *result.BestOpportunity)
	})

	t.Run("idempotent given identical upstream data", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()
		seedQualifying(fetcher, "KO", 62.50, 0.32)
		s := newTestScreener(fetcher)

		first := s.ScreenTicker(symbol)
		second := s.ScreenTicker(symbol)
		assert.Equal(t, first, second)
	})
}

type panickyFetcher struct {
	MockMarketDataFetcher
}

func (f *panickyFetcher) FetchStockQuote(symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error) {
	panic("corrupted quote state")
}

func TestScreenBatch(t *testing.T) {
	t.Run("qualified first, ordered by best return", func(t *testing.T) {
		fetcher := NewMockMarketDataFetcher()

		// KO returns 2.0% on capital, PEP 1.2%; WMT fails the volume gate.
		seedQualifying(fetcher, "KO", 62.50, 0.32)

		pep := eventmodels.NewStockSymbol("PEP")
		fetcher.SetQuote(quoteFixture("PEP", 170.00, 12_000_000))
		fetcher.SetExpirations(pep, []string{expDate(35)})
		fetcher.SetChain(pep, expDate(35), []*eventmodels.OptionChainTickDTO{
			putTick(165, 1.90, 2.05, -0.25, 0.30, 400),
		})

		fetcher.SetQuote(quoteFixture("WMT", 95.00, 4_000_000))

		s := newTestScreener(fetcher)
		report := s.ScreenBatch([]eventmodels.StockSymbol{"WMT", "PEP", "KO"})

		assert.True(t, report.Success)
		assert.Equal(t, 3, report.TotalScreened)
		assert.Equal(t, 2, report.Qualified)
		assert.Equal(t, eventmodels.StrategyName, report.Strategy)
		assert.Equal(t, "0.20-0.30", report.Criteria.DeltaRange)

		assert.Equal(t, eventmodels.StockSymbol("KO"), report.Results[0].Ticker)
		assert.Equal(t, eventmodels.StockSymbol("PEP"), report.Results[1].Ticker)
		assert.Equal(t, eventmodels.StockSymbol("WMT"), report.Results[2].Ticker)

		for i := 0; i < len(report.Results)-1; i++ {
			r1, r2 := report.Results[i], report.Results[i+1]
			if r1.Qualified == r2.Qualified {
				assert.GreaterOrEqual(t, r1.BestReturnPct(), r2.BestReturnPct())
			} else {
				assert.True(t, r1.Qualified)
			}
		}
	})

	t.Run("panic in one ticker does not abort the batch", func(t *testing.T) {
		s := newTestScreener(&panickyFetcher{})

		report := s.ScreenBatch([]eventmodels.StockSymbol{"KO", "PEP"})
		assert.Equal(t, 2, report.TotalScreened)
		assert.Equal(t, 0, report.Qualified)

		for _, result := range report.Results {
			assert.False(t, result.Qualified)
			assert.Equal(t, "Error: corrupted quote state", result.Reason)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		s := newTestScreener(NewMockMarketDataFetcher())

		report := s.ScreenBatch(nil)
		assert.True(t, report.Success)
		assert.Zero(t, report.TotalScreened)
		assert.Zero(t, report.Qualified)
		assert.Len(t, report.Results, 0)
	})
}
