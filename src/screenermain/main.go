package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
	"github.com/pompousraccoon04/lst-screener-api/src/eventservices"
	"github.com/pompousraccoon04/lst-screener-api/src/screener"
	"github.com/pompousraccoon04/lst-screener-api/src/screenerapi"
	"github.com/pompousraccoon04/lst-screener-api/src/utils"
)

const defaultTradierBaseURL = "https://sandbox.tradier.com/v1"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("failed to load environment variables: %v", err)
	}

	apiKey, err := utils.GetEnv("TRADIER_API_KEY")
	if err != nil {
		log.Fatalf("$TRADIER_API_KEY not set: %v. Create a .env file with: TRADIER_API_KEY=your_key_here", err)
	}

	baseURL := utils.GetEnvOrDefault("TRADIER_BASE_URL", defaultTradierBaseURL)
	port := utils.GetEnvOrDefault("PORT", "5000")

	universe := eventmodels.NewStockUniverse()
	if universeFile := os.Getenv("STOCK_UNIVERSE_FILE"); universeFile != "" {
		config, err := os.ReadFile(universeFile)
		if err != nil {
			log.Fatalf("failed to read stock universe config: %v", err)
		}

		universe, err = eventmodels.NewStockUniverseFromYAML(config)
		if err != nil {
			log.Fatalf("failed to unmarshal stock universe config: %v", err)
		}
	}

	marketData := eventservices.NewTradierMarketDataService(baseURL, apiKey)
	scr := screener.NewScreener(marketData)

	router := mux.NewRouter()
	screenerapi.SetupHandler(router.PathPrefix("/api").Subrouter(), universe, scr)

	srv := &http.Server{
		Handler: router,
		Addr:    fmt.Sprintf(":%s", port),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		log.Infof("LST (Low Stress Trading) Options Screener API")
		log.Infof("strategy: delta %.2f-%.2f puts, %d-%d DTE, %d blue chip stocks",
			eventmodels.MinDelta, eventmodels.MaxDelta,
			eventmodels.MinDaysToExpiration, eventmodels.MaxDaysToExpiration,
			universe.TotalStocks())
		log.Infof("listening on :%s", port)

		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.Info("main: init complete")

	<-stop

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}

	log.Info("main: gracefully stopped!")
}
