package eventmodels

const StrategyName = "LST (Low Stress Trading)"

// LST thresholds. Puts are sold against blue chips only, so the bands are
// deliberately narrow: no weeklies, no high-IV names.
const (
	MinDelta = 0.20
	MaxDelta = 0.30

	MinDaysToExpiration = 30
	MaxDaysToExpiration = 45

	MinSharePrice = 50.0
	MaxSharePrice = 200.0

	MinVolumeMillions = 10.0

	MinImpliedVolatilityPct = 25.0
	MaxImpliedVolatilityPct = 45.0
)

type ScreeningCriteria struct {
	DeltaRange    string `json:"delta_range"`
	DTERange      string `json:"dte_range"`
	PriceRange    string `json:"price_range"`
	VolumeMinimum string `json:"volume_minimum"`
	IVRange       string `json:"iv_range"`
}

func DefaultScreeningCriteria() ScreeningCriteria {
	return ScreeningCriteria{
		DeltaRange:    "0.20-0.30",
		DTERange:      "30-45 days",
		PriceRange:    "$50-$200",
		VolumeMinimum: "10M daily",
		IVRange:       "25-45%",
	}
}
