package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/service"
)

// AnalyticsHandler exposes the staff dashboard endpoints.
type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

const defaultLimit = 10

func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultLimit
	}
	return n
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsSvc.DashboardSummary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) MostRented(w http.ResponseWriter, r *http.Request) {
	usage, err := h.analyticsSvc.MostRentedVehicles(r.Context(), limitParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, usage)
}

func (h *AnalyticsHandler) LeastRented(w http.ResponseWriter, r *http.Request) {
	usage, err := h.analyticsSvc.LeastRentedVehicles(r.Context(), limitParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, usage)
}

func (h *AnalyticsHandler) VehicleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsSvc.VehicleAnalytics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) RenterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsSvc.RenterAnalytics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) Activity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.analyticsSvc.ActivityLog(r.Context(), limitParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
