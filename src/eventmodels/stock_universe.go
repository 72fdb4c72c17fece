package eventmodels

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// StockUniverse is the fixed set of blue chips the screen runs against,
// grouped by sector category.
type StockUniverse struct {
	Categories map[string][]StockSymbol `json:"categories" yaml:"categories"`
}

// NewStockUniverse returns the default LST universe of 50 blue chip stocks.
func NewStockUniverse() *StockUniverse {
	return &StockUniverse{
		Categories: map[string][]StockSymbol{
			"consumer_staples": {
				"KO", "PEP", "WMT", "TGT", "COST", "KR", "PG", "CL",
				"CLX", "KMB", "CHD", "MKC", "GIS", "K", "CPB",
			},
			"healthcare": {
				"JNJ", "PFE", "ABBV", "UNH", "CVS", "MRK", "LLY",
				"BMY", "AMGN", "GILD",
			},
			"industrials": {
				"HD", "LOW", "MMM", "CAT", "DE", "UPS", "FDX",
				"HON", "LMT", "RTX",
			},
			"technology": {
				"AAPL", "MSFT", "GOOGL", "INTC", "CSCO", "IBM",
				"ORCL", "QCOM",
			},
			"consumer_discretionary": {
				"MCD", "SBUX", "NKE", "DIS", "MAR", "BKNG", "CMG",
			},
		},
	}
}

func NewStockUniverseFromYAML(data []byte) (*StockUniverse, error) {
	var universe StockUniverse
	if err := yaml.Unmarshal(data, &universe); err != nil {
		return nil, fmt.Errorf("NewStockUniverseFromYAML: failed to unmarshal universe: %w", err)
	}

	if len(universe.Categories) == 0 {
		return nil, fmt.Errorf("NewStockUniverseFromYAML: universe has no categories")
	}

	return &universe, nil
}

func (u *StockUniverse) CategoryNames() []string {
	names := make([]string, 0, len(u.Categories))
	for name := range u.Categories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (u *StockUniverse) Category(name string) ([]StockSymbol, bool) {
	symbols, ok := u.Categories[name]
	return symbols, ok
}

// AllStocks flattens the universe in sorted-category order so batch runs are
// deterministic.
func (u *StockUniverse) AllStocks() []StockSymbol {
	var symbols []StockSymbol
	for _, name := range u.CategoryNames() {
		symbols = append(symbols, u.Categories[name]...)
	}

	return symbols
}

func (u *StockUniverse) AllStocksSorted() []StockSymbol {
	symbols := u.AllStocks()
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})

	return symbols
}

func (u *StockUniverse) TotalStocks() int {
	total := 0
	for _, symbols := range u.Categories {
		total += len(symbols)
	}

	return total
}
