package eventmodels

// ScreeningResult is the single-ticker verdict. Pointer fields are only set
// once the corresponding screening stage has run: a ticker rejected on price
// never reports IV or opportunities, and a ticker whose quote could not be
// fetched reports nothing but the reason.
type ScreeningResult struct {
	Ticker             StockSymbol   `json:"ticker"`
	Qualified          bool          `json:"qualified"`
	Price              *float64      `json:"price,omitempty"`
	VolumeMillions     *float64      `json:"volume_millions,omitempty"`
	ImpliedVolatility  *float64      `json:"iv,omitempty"`
	IVStatus           string        `json:"iv_status,omitempty"`
	Description        string        `json:"description,omitempty"`
	BestOpportunity    *Opportunity  `json:"best_opportunity,omitempty"`
	TotalOpportunities int           `json:"total_opportunities,omitempty"`
	TopOpportunities   []Opportunity `json:"all_opportunities,omitempty"`
	Reason             string        `json:"reason,omitempty"`
}

// BestReturnPct is the batch sort key. Results without a best opportunity
// sort as zero, even next to qualified entries with genuinely low returns.
func (r *ScreeningResult) BestReturnPct() float64 {
	if r.BestOpportunity == nil {
		return 0
	}

	return r.BestOpportunity.ReturnPct
}

type BatchReport struct {
	Success       bool              `json:"success"`
	Timestamp     string            `json:"timestamp"`
	TotalScreened int               `json:"total_screened"`
	Qualified     int               `json:"qualified"`
	Strategy      string            `json:"strategy"`
	Criteria      ScreeningCriteria `json:"criteria"`
	Results       []ScreeningResult `json:"results"`
}
