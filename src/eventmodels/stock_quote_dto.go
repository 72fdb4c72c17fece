package eventmodels

import (
	"encoding/json"
	"fmt"
)

type StockQuoteDTO struct {
	Symbol           string  `json:"symbol"`
	Description      string  `json:"description"`
	Exch             string  `json:"exch"`
	Type             string  `json:"type"`
	LastPrice        float64 `json:"last"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"change_percentage"`
	Volume           int     `json:"volume"`
	AverageVolume    int     `json:"average_volume"`
	Bid              float64 `json:"bid"`
	Ask              float64 `json:"ask"`
	PrevClose        float64 `json:"prevclose"`
	Week52High       float64 `json:"week_52_high"`
	Week52Low        float64 `json:"week_52_low"`
}

func (dto *StockQuoteDTO) ToModel() *StockQuote {
	return &StockQuote{
		Symbol:      NewStockSymbol(dto.Symbol),
		LastPrice:   dto.LastPrice,
		Volume:      float64(dto.Volume),
		Description: dto.Description,
	}
}

type StockQuotesRawDTO struct {
	Quote            *json.RawMessage `json:"quote"`
	UnmatchedSymbols *json.RawMessage `json:"unmatched_symbols"`
}

type StockQuotesDTO struct {
	Quotes StockQuotesRawDTO `json:"quotes"`
}

// Parse normalizes the quotes payload into a slice. Tradier collapses a
// one-element result set into a bare object, so a single quote must be
// retried as a scalar when the list decode fails.
func (dto *StockQuotesDTO) Parse() ([]StockQuoteDTO, error) {
	var quotes []StockQuoteDTO

	if dto.Quotes.Quote != nil {
		if quoteListErr := json.Unmarshal(*dto.Quotes.Quote, &quotes); quoteListErr != nil {
			var quote StockQuoteDTO
			if quoteSingleErr := json.Unmarshal(*dto.Quotes.Quote, &quote); quoteSingleErr != nil {
				return nil, fmt.Errorf("StockQuotesDTO.Parse: error decoding JSON: %v", quoteSingleErr)
			}

			quotes = append(quotes, quote)
		}
	}

	return quotes, nil
}
