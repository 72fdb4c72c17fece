package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
	"github.com/pompousraccoon04/lst-screener-api/src/eventservices"
	"github.com/pompousraccoon04/lst-screener-api/src/screener"
	"github.com/pompousraccoon04/lst-screener-api/src/utils"
)

type RunArgs struct {
	Tickers  string
	Category string
	All      bool
}

type RunResult struct {
	Report eventmodels.BatchReport
	Table  string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/screen/main.go --tickers KO,WMT",
	Short: "Run the LST put screen once and print the report",
	Run: func(cmd *cobra.Command, args []string) {
		tickers, err := cmd.Flags().GetString("tickers")
		if err != nil {
			log.Fatalf("error getting tickers: %v", err)
		}

		category, err := cmd.Flags().GetString("category")
		if err != nil {
			log.Fatalf("error getting category: %v", err)
		}

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			log.Fatalf("error getting all: %v", err)
		}

		result, err := Run(RunArgs{
			Tickers:  tickers,
			Category: category,
			All:      all,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("%d/%d stocks qualified\n\n", result.Report.Qualified, result.Report.TotalScreened)
		fmt.Println(result.Table)
	},
}

func Run(args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		return RunResult{}, fmt.Errorf("error loading environment variables: %v", err)
	}

	apiKey, err := utils.GetEnv("TRADIER_API_KEY")
	if err != nil {
		return RunResult{}, fmt.Errorf("$TRADIER_API_KEY not set: %v", err)
	}

	baseURL := utils.GetEnvOrDefault("TRADIER_BASE_URL", "https://sandbox.tradier.com/v1")

	universe := eventmodels.NewStockUniverse()

	symbols, err := resolveSymbols(args, universe)
	if err != nil {
		return RunResult{}, err
	}

	scr := screener.NewScreener(eventservices.NewTradierMarketDataService(baseURL, apiKey))
	report := scr.ScreenBatch(symbols)

	return RunResult{
		Report: report,
		Table:  renderReport(report),
	}, nil
}

func resolveSymbols(args RunArgs, universe *eventmodels.StockUniverse) ([]eventmodels.StockSymbol, error) {
	if args.Tickers != "" {
		var symbols []eventmodels.StockSymbol
		for _, ticker := range strings.Split(args.Tickers, ",") {
			symbols = append(symbols, eventmodels.NewStockSymbol(ticker))
		}

		return symbols, nil
	}

	if args.Category != "" {
		symbols, ok := universe.Category(args.Category)
		if !ok {
			return nil, fmt.Errorf("invalid category %q, choose from: %v", args.Category, universe.CategoryNames())
		}

		return symbols, nil
	}

	if args.All {
		return universe.AllStocks(), nil
	}

	staples, _ := universe.Category("consumer_staples")
	if len(staples) > 10 {
		staples = staples[:10]
	}

	return staples, nil
}

func renderReport(report eventmodels.BatchReport) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Ticker", "Qualified", "Price", "Volume", "IV", "Best Strike", "DTE", "Return", "Reason"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, result := range report.Results {
		row := []string{
			result.Ticker.String(),
			fmt.Sprintf("%v", result.Qualified),
			formatMoney(p, result.Price),
			formatMillions(result.VolumeMillions),
			formatPct(result.ImpliedVolatility),
			"-", "-", "-",
			result.Reason,
		}

		if best := result.BestOpportunity; best != nil {
			row[5] = p.Sprintf("$%.2f", best.Strike)
			row[6] = fmt.Sprintf("%d", best.DaysToExpiration)
			row[7] = fmt.Sprintf("%.2f%%", best.ReturnPct)
		}

		table.Append(row)
	}

	table.Render()

	return display.String()
}

func formatMoney(p *message.Printer, v *float64) string {
	if v == nil {
		return "-"
	}

	return p.Sprintf("$%.2f", *v)
}

func formatMillions(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%.1fM", *v)
}

func formatPct(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%.2f%%", *v)
}

func main() {
	runCmd.PersistentFlags().String("tickers", "", "Comma separated tickers to screen")
	runCmd.PersistentFlags().String("category", "", "Universe category to screen")
	runCmd.PersistentFlags().Bool("all", false, "Screen the entire universe")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
