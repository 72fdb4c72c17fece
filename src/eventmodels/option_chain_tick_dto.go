package eventmodels

type GreeksDTO struct {
	Delta     float64 `json:"delta"`
	Gamma     float64 `json:"gamma"`
	Theta     float64 `json:"theta"`
	Vega      float64 `json:"vega"`
	Rho       float64 `json:"rho"`
	Phi       float64 `json:"phi"`
	BidIv     float64 `json:"bid_iv"`
	MidIv     float64 `json:"mid_iv"`
	AskIv     float64 `json:"ask_iv"`
	SmvVol    float64 `json:"smv_vol"`
	UpdatedAt string  `json:"updated_at"`
}

// OptionChainTickDTO is one row of a Tradier option chain requested with
// greeks=true. Greeks stays a pointer: upstream omits the block for
// contracts it has no model for, and those rows must be skipped downstream.
type OptionChainTickDTO struct {
	Symbol         string     `json:"symbol"`
	Description    string     `json:"description"`
	Last           float64    `json:"last"`
	Bid            float64    `json:"bid"`
	Ask            float64    `json:"ask"`
	Volume         int        `json:"volume"`
	OpenInterest   int        `json:"open_interest"`
	Strike         float64    `json:"strike"`
	ContractSize   int        `json:"contract_size"`
	OptionType     string     `json:"option_type"`
	ExpirationDate string     `json:"expiration_date"`
	ExpirationType string     `json:"expiration_type"`
	Greeks         *GreeksDTO `json:"greeks"`
}

const (
	OptionTypePut  = "put"
	OptionTypeCall = "call"
)
