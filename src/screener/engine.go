package screener

import (
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

// ScreenTicker screens a single ticker against the LST criteria. It never
// returns an error: upstream failures become unqualified results with a
// reason, so one bad ticker cannot abort a batch.
//
// Price and volume gate via early return. A ticker rejected there reports
// neither IV nor opportunities; that field-presence contract is relied on by
// downstream consumers.
func (s *Screener) ScreenTicker(symbol eventmodels.StockSymbol) eventmodels.ScreeningResult {
	log.WithFields(log.Fields{"ticker": symbol}).Info("ScreenTicker: screening")

	quote, err := s.Fetcher.FetchStockQuote(symbol)
	if err != nil {
		log.WithFields(log.Fields{"ticker": symbol}).Warnf("ScreenTicker: failed to fetch quote: %v", err)
	}

	if quote == nil {
		return eventmodels.ScreeningResult{
			Ticker:    symbol,
			Qualified: false,
			Reason:    "Unable to fetch quote",
		}
	}

	price := quote.LastPrice
	volumeMillions := quote.Volume / 1_000_000

	if price < eventmodels.MinSharePrice || price > eventmodels.MaxSharePrice {
		return eventmodels.ScreeningResult{
			Ticker:         symbol,
			Qualified:      false,
			Reason:         fmt.Sprintf("Price $%.2f outside LST range ($50-$200)", price),
			Price:          roundPtr(price),
			VolumeMillions: roundPtr(volumeMillions),
		}
	}

	if volumeMillions < eventmodels.MinVolumeMillions {
		return eventmodels.ScreeningResult{
			Ticker:         symbol,
			Qualified:      false,
			Reason:         fmt.Sprintf("Volume %.1fM below LST minimum (10M)", volumeMillions),
			Price:          roundPtr(price),
			VolumeMillions: roundPtr(volumeMillions),
		}
	}

	iv := s.EstimateImpliedVolatility(symbol, price)
	ivStatus, ivQualified := classifyImpliedVolatility(iv)

	opportunities := s.FindPutOpportunities(symbol, price)

	if len(opportunities) == 0 {
		return eventmodels.ScreeningResult{
			Ticker:            symbol,
			Qualified:         false,
			Reason:            "No delta 0.20-0.30 puts found in 30-45 DTE range",
			Price:             roundPtr(price),
			VolumeMillions:    roundPtr(volumeMillions),
			ImpliedVolatility: iv,
			IVStatus:          ivStatus,
		}
	}

	qualified := ivQualified

	best := opportunities[0]

	top := opportunities
	if len(top) > 5 {
		top = top[:5]
	}

	if qualified {
		log.WithFields(log.Fields{"ticker": symbol}).Infof("ScreenTicker: QUALIFIED - $%.2f, %s, %d opportunities", price, ivStatus, len(opportunities))
	} else {
		log.WithFields(log.Fields{"ticker": symbol}).Infof("ScreenTicker: not qualified - %s", ivStatus)
	}

	return eventmodels.ScreeningResult{
		Ticker:             symbol,
		Qualified:          qualified,
		Price:              roundPtr(price),
		VolumeMillions:     roundPtr(volumeMillions),
		ImpliedVolatility:  iv,
		IVStatus:           ivStatus,
		Description:        quote.Description,
		BestOpportunity:    &best,
		TotalOpportunities: len(opportunities),
		TopOpportunities:   top,
	}
}

// screenTickerSafe converts a panic during a single-ticker screen into an
// unqualified result so the rest of the batch still completes. Expected
// failure kinds are handled explicitly inside ScreenTicker; this is the
// boundary for the unexpected ones.
func (s *Screener) screenTickerSafe(symbol eventmodels.StockSymbol) (result eventmodels.ScreeningResult) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{"ticker": symbol}).Errorf("screenTickerSafe: recovered: %v", r)

			result = eventmodels.ScreeningResult{
				Ticker:    symbol,
				Qualified: false,
				Reason:    fmt.Sprintf("Error: %v", r),
			}
		}
	}()

	return s.ScreenTicker(symbol)
}

// ScreenBatch screens each ticker sequentially and aggregates the report,
// sorted qualified-first and by best return within each group. Results
// without a best opportunity sort with return 0, which may interleave with
// legitimately low-return qualified entries.
func (s *Screener) ScreenBatch(symbols []eventmodels.StockSymbol) eventmodels.BatchReport {
	log.Infof("ScreenBatch: processing %d stocks", len(symbols))

	results := make([]eventmodels.ScreeningResult, 0, len(symbols))
	qualifiedCount := 0

	for _, symbol := range symbols {
		result := s.screenTickerSafe(symbol)
		results = append(results, result)

		if result.Qualified {
			qualifiedCount++
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Qualified != results[j].Qualified {
			return results[i].Qualified
		}

		return results[i].BestReturnPct() > results[j].BestReturnPct()
	})

	log.Infof("ScreenBatch: complete: %d/%d stocks qualified", qualifiedCount, len(results))

	return eventmodels.BatchReport{
		Success:       true,
		Timestamp:     s.Now().Format(time.RFC3339),
		TotalScreened: len(results),
		Qualified:     qualifiedCount,
		Strategy:      eventmodels.StrategyName,
		Criteria:      eventmodels.DefaultScreeningCriteria(),
		Results:       results,
	}
}

func classifyImpliedVolatility(iv *float64) (string, bool) {
	if iv == nil {
		return "Unable to calculate IV", false
	}

	switch {
	case *iv < eventmodels.MinImpliedVolatilityPct:
		return fmt.Sprintf("IV %.2f%% below LST minimum (25%%)", *iv), false
	case *iv > eventmodels.MaxImpliedVolatilityPct:
		return fmt.Sprintf("IV %.2f%% above LST maximum (45%%)", *iv), false
	default:
		return fmt.Sprintf("IV %.2f%% in LST range (25-45%%)", *iv), true
	}
}

func roundPtr(x float64) *float64 {
	rounded := eventmodels.Round2(x)
	return &rounded
}
