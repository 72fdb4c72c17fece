package screenerapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/schema"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

type ScreenQueryRequest struct {
	Tickers  string `schema:"tickers"`
	Category string `schema:"category"`
	All      string `schema:"all"`
}

type ScreenPostRequest struct {
	// Pointer so a body without the key can be told apart from an empty list.
	Tickers *[]string `json:"tickers"`
}

// resolveTickers turns a screen request into the ticker list to process.
// GET precedence: explicit tickers, then category, then all=true, then the
// first 10 consumer staples. POST requires a tickers list.
func (h *Handler) resolveTickers(r *http.Request) ([]eventmodels.StockSymbol, error) {
	if r.Method == http.MethodPost {
		var req ScreenPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tickers == nil {
			return nil, fmt.Errorf("POST request must include 'tickers' list")
		}

		symbols := make([]eventmodels.StockSymbol, 0, len(*req.Tickers))
		for _, ticker := range *req.Tickers {
			symbols = append(symbols, eventmodels.NewStockSymbol(ticker))
		}

		if len(symbols) == 0 {
			return nil, fmt.Errorf("No tickers specified")
		}

		return symbols, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse query parameters: %v", err)
	}

	var req ScreenQueryRequest
	if err := queryDecoder.Decode(&req, r.Form); err != nil {
		return nil, fmt.Errorf("failed to decode query parameters: %v", err)
	}

	var symbols []eventmodels.StockSymbol

	switch {
	case req.Tickers != "":
		for _, ticker := range strings.Split(req.Tickers, ",") {
			symbols = append(symbols, eventmodels.NewStockSymbol(ticker))
		}

	case req.Category != "":
		categorySymbols, ok := h.universe.Category(req.Category)
		if !ok {
			return nil, fmt.Errorf("Invalid category. Choose from: %v", h.universe.CategoryNames())
		}

		symbols = categorySymbols

	case req.All == "true":
		symbols = h.universe.AllStocks()

	default:
		staples, _ := h.universe.Category("consumer_staples")
		if len(staples) > 10 {
			staples = staples[:10]
		}

		symbols = staples
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("No tickers specified")
	}

	return symbols, nil
}
