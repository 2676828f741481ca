package routes

import (
	apipredict "cfpredict/api/predict"

	"github.com/gorilla/mux"
)

func GetAllHandlers(r *mux.Router, h *apipredict.Handlers) {
	GetPredictHandler(r, h)
}

func GetPredictHandler(r *mux.Router, h *apipredict.Handlers) {
	r.HandleFunc("/api/predict", h.PredictHandler).Methods("GET")
	r.HandleFunc("/api/history", h.HistoryHandler).Methods("GET")
}
