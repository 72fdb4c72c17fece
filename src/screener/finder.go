package screener

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

// Screener runs the LST put screen against a market data source. It holds no
// request state: every call fetches fresh data and discards it.
type Screener struct {
	Fetcher MarketDataFetcher
	Now     func() time.Time
}

func NewScreener(fetcher MarketDataFetcher) *Screener {
	return &Screener{
		Fetcher: fetcher,
		Now:     time.Now,
	}
}

// suitableExpirations narrows the upstream expiration list to the LST 30-45
// DTE window, preserving upstream order. Gateway failures and unparseable
// dates collapse to an empty result.
func (s *Screener) suitableExpirations(symbol eventmodels.StockSymbol, now time.Time) []eventmodels.Expiration {
	dates, err := s.Fetcher.FetchOptionExpirations(symbol)
	if err != nil {
		log.WithFields(log.Fields{"ticker": symbol}).Warnf("suitableExpirations: failed to fetch expirations: %v", err)
		return nil
	}

	var suitable []eventmodels.Expiration

	for _, date := range dates {
		expDate, err := time.Parse("2006-01-02", date)
		if err != nil {
			log.WithFields(log.Fields{"ticker": symbol}).Warnf("suitableExpirations: failed to parse expiration date %s: %v", date, err)
			continue
		}

		daysToExp := int(expDate.Sub(now).Hours() / 24)
		if daysToExp >= eventmodels.MinDaysToExpiration && daysToExp <= eventmodels.MaxDaysToExpiration {
			suitable = append(suitable, eventmodels.Expiration{
				Date:             date,
				DaysToExpiration: daysToExp,
			})
		}
	}

	return suitable
}

// FindPutOpportunities returns every LST-compliant put (delta 0.20-0.30,
// 30-45 DTE) across the first two suitable expirations, sorted by return
// percentage descending.
func (s *Screener) FindPutOpportunities(symbol eventmodels.StockSymbol, currentPrice float64) []eventmodels.Opportunity {
	now := s.Now()

	suitable := s.suitableExpirations(symbol, now)
	if len(suitable) == 0 {
		log.WithFields(log.Fields{"ticker": symbol}).Infof("FindPutOpportunities: no suitable expirations (30-45 DTE)")
		return nil
	}

	// No weeklies: two monthly expirations is plenty of chain to pick from.
	if len(suitable) > 2 {
		suitable = suitable[:2]
	}

	var opportunities []eventmodels.Opportunity

	for _, expiration := range suitable {
		ticks, err := s.Fetcher.FetchOptionChainTicks(symbol, expiration.Date)
		if err != nil {
			log.WithFields(log.Fields{"ticker": symbol, "expiration": expiration.Date}).Warnf("FindPutOpportunities: failed to fetch option chain: %v", err)
			continue
		}

		for _, tick := range ticks {
			if tick.OptionType != eventmodels.OptionTypePut {
				continue
			}

			if tick.Greeks == nil {
				continue
			}

			delta := math.Abs(tick.Greeks.Delta)
			if delta < eventmodels.MinDelta || delta > eventmodels.MaxDelta {
				continue
			}

			opportunities = append(opportunities, eventmodels.NewOpportunity(tick, expiration, currentPrice))
		}
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].ReturnPct > opportunities[j].ReturnPct
	})

	return opportunities
}

// EstimateImpliedVolatility averages the mid IV of near-the-money puts
// (strikes within 90-110% of the underlying) on the single expiration
// closest to the middle of the DTE window. Returns nil when no usable IV
// values exist.
func (s *Screener) EstimateImpliedVolatility(symbol eventmodels.StockSymbol, currentPrice float64) *float64 {
	now := s.Now()

	suitable := s.suitableExpirations(symbol, now)
	if len(suitable) == 0 {
		return nil
	}

	const targetDTE = (eventmodels.MinDaysToExpiration + eventmodels.MaxDaysToExpiration) / 2

	closest := suitable[0]
	minDiff := absInt(closest.DaysToExpiration - targetDTE)

	for _, expiration := range suitable[1:] {
		if diff := absInt(expiration.DaysToExpiration - targetDTE); diff < minDiff {
			minDiff = diff
			closest = expiration
		}
	}

	ticks, err := s.Fetcher.FetchOptionChainTicks(symbol, closest.Date)
	if err != nil {
		log.WithFields(log.Fields{"ticker": symbol, "expiration": closest.Date}).Warnf("EstimateImpliedVolatility: failed to fetch option chain: %v", err)
		return nil
	}

	var ivValues []float64

	for _, tick := range ticks {
		if tick.OptionType != eventmodels.OptionTypePut {
			continue
		}

		if tick.Greeks == nil {
			continue
		}

		if tick.Strike < 0.90*currentPrice || tick.Strike > 1.10*currentPrice {
			continue
		}

		// Guards against bad upstream data: anything outside 5%-200% is noise.
		if tick.Greeks.MidIv < 0.05 || tick.Greeks.MidIv > 2.0 {
			continue
		}

		ivValues = append(ivValues, tick.Greeks.MidIv)
	}

	if len(ivValues) == 0 {
		return nil
	}

	mean, err := stats.Mean(ivValues)
	if err != nil {
		log.WithFields(log.Fields{"ticker": symbol}).Warnf("EstimateImpliedVolatility: failed to calculate mean: %v", err)
		return nil
	}

	ivPct := eventmodels.Round2(mean * 100)

	return &ivPct
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
