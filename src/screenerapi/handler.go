package screenerapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pompousraccoon04/lst-screener-api/src/eventmodels"
	"github.com/pompousraccoon04/lst-screener-api/src/screener"
)

type Handler struct {
	universe *eventmodels.StockUniverse
	screener *screener.Screener
}

func SetupHandler(router *mux.Router, universe *eventmodels.StockUniverse, scr *screener.Screener) {
	h := &Handler{
		universe: universe,
		screener: scr,
	}

	router.HandleFunc("/health", h.handleHealth)
	router.HandleFunc("/lst/universe", h.handleUniverse)
	router.HandleFunc("/lst/screen", h.handleScreen)
}

type errorResponse struct {
	Msg string `json:"error"`
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(statusCode int, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Msg: err.Error()}); encodeErr != nil {
		log.Errorf("setErrorResponse: encode: %v", encodeErr)
	}
}

type HealthResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Strategy   string `json:"strategy"`
	DataSource string `json:"data_source"`
	Timestamp  string `json:"timestamp"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	response := HealthResponse{
		Status:     "healthy",
		Service:    "LST Options Screener API",
		Strategy:   eventmodels.StrategyName,
		DataSource: "Tradier",
		Timestamp:  time.Now().Format(time.RFC3339),
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("handleHealth: failed to set response: %v", err)
	}
}

type UniverseResponse struct {
	Success     bool                                 `json:"success"`
	TotalStocks int                                  `json:"total_stocks"`
	Categories  map[string][]eventmodels.StockSymbol `json:"categories"`
	AllStocks   []eventmodels.StockSymbol            `json:"all_stocks"`
}

func (h *Handler) handleUniverse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	response := UniverseResponse{
		Success:     true,
		TotalStocks: h.universe.TotalStocks(),
		Categories:  h.universe.Categories,
		AllStocks:   h.universe.AllStocksSorted(),
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("handleUniverse: failed to set response: %v", err)
	}
}

func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	symbols, err := h.resolveTickers(r)
	if err != nil {
		setErrorResponse(http.StatusBadRequest, err, w)
		return
	}

	requestID := uuid.New()

	log.WithFields(log.Fields{
		"requestID": requestID,
		"tickers":   len(symbols),
	}).Info("handleScreen: processing screen request")

	report := h.screener.ScreenBatch(symbols)

	if err := setResponse(report, w); err != nil {
		log.WithFields(log.Fields{"requestID": requestID}).Errorf("handleScreen: failed to set response: %v", err)
		setErrorResponse(http.StatusInternalServerError, err, w)
	}
}
