package eventmodels

import "math"

// Opportunity is one LST-compliant short put, derived from a chain tick and
// the underlying price at screening time. Immutable once built; batches are
// ordered by ReturnPct descending.
type Opportunity struct {
	Expiration           string  `json:"expiration"`
	DaysToExpiration     int     `json:"dte"`
	Strike               float64 `json:"strike"`
	Delta                float64 `json:"delta"`
	Bid                  float64 `json:"bid"`
	Ask                  float64 `json:"ask"`
	MidPrice             float64 `json:"mid_price"`
	PremiumPerContract   float64 `json:"premium_per_contract"`
	CapitalAtRisk        float64 `json:"capital_at_risk"`
	ReturnPct            float64 `json:"return_pct"`
	DistanceFromPricePct float64 `json:"distance_from_price_pct"`
	OpenInterest         int     `json:"open_interest"`
	BidAskSpread         float64 `json:"bid_ask_spread"`
	ImpliedVolatilityPct float64 `json:"implied_volatility"`
}

func NewOpportunity(tick *OptionChainTickDTO, expiration Expiration, currentPrice float64) Opportunity {
	midPrice := (tick.Bid + tick.Ask) / 2

	// Per contract: 100 shares.
	capitalAtRisk := tick.Strike * 100
	premiumCollected := midPrice * 100

	returnPct := 0.0
	if capitalAtRisk > 0 {
		returnPct = premiumCollected / capitalAtRisk * 100
	}

	distancePct := 0.0
	if currentPrice > 0 {
		distancePct = (currentPrice - tick.Strike) / currentPrice * 100
	}

	var delta, midIv float64
	if tick.Greeks != nil {
		delta = math.Abs(tick.Greeks.Delta)
		midIv = tick.Greeks.MidIv
	}

	return Opportunity{
		Expiration:           expiration.Date,
		DaysToExpiration:     expiration.DaysToExpiration,
		Strike:               round2(tick.Strike),
		Delta:                round3(delta),
		Bid:                  round2(tick.Bid),
		Ask:                  round2(tick.Ask),
		MidPrice:             round2(midPrice),
		PremiumPerContract:   round2(premiumCollected),
		CapitalAtRisk:        round2(capitalAtRisk),
		ReturnPct:            round2(returnPct),
		DistanceFromPricePct: round2(distancePct),
		OpenInterest:         tick.OpenInterest,
		BidAskSpread:         round2(tick.Ask - tick.Bid),
		ImpliedVolatilityPct: round2(midIv * 100),
	}
}
