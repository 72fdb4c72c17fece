package eventmodels

type StockQuote struct {
	Symbol      StockSymbol
	LastPrice   float64
	Volume      float64
	Description string
}
