package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

// RentalHandler exposes the booking engine: rent, quote, return, availability
// and the ledger views.
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentRequest struct {
	VehicleID string `json:"vehicle_id"`
	RenterID  string `json:"renter_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	period, err := domain.NewRentalPeriod(req.Start, req.End)
	if err != nil {
		respondError(w, err)
		return
	}

	rec, err := h.rentalSvc.Rent(r.Context(), req.VehicleID, req.RenterID, period)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// Quote prices a prospective booking without creating it.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	period, err := domain.NewRentalPeriod(req.Start, req.End)
	if err != nil {
		respondError(w, err)
		return
	}

	quote, err := h.rentalSvc.Quote(r.Context(), req.VehicleID, req.RenterID, period)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

type returnResponse struct {
	Returned bool `json:"returned"`
}

func (h *RentalHandler) ReturnByID(w http.ResponseWriter, r *http.Request) {
	rentalID := mux.Vars(r)["id"]
	ok, err := h.rentalSvc.ReturnByID(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	if !ok {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "rental '" + rentalID + "' not found"})
		return
	}
	respondJSON(w, http.StatusOK, returnResponse{Returned: true})
}

type returnByRenterRequest struct {
	VehicleID string `json:"vehicle_id"`
	RenterID  string `json:"renter_id"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// ReturnByRenter is the fallback return path for clients that never stored the
// rental id. The period is optional; when present it must match exactly.
func (h *RentalHandler) ReturnByRenter(w http.ResponseWriter, r *http.Request) {
	var req returnByRenterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var period *domain.RentalPeriod
	if req.Start != "" || req.End != "" {
		p, err := domain.NewRentalPeriod(req.Start, req.End)
		if err != nil {
			respondError(w, err)
			return
		}
		period = &p
	}

	ok, err := h.rentalSvc.ReturnByRenter(r.Context(), req.VehicleID, req.RenterID, period)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, returnResponse{Returned: ok})
}

// RentedVehicles lists vehicles that are out on unreturned bookings. The
// start/end query narrows to bookings overlapping that period.
func (h *RentalHandler) RentedVehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var period *domain.RentalPeriod
	if q.Get("start") != "" || q.Get("end") != "" {
		p, err := domain.NewRentalPeriod(q.Get("start"), q.Get("end"))
		if err != nil {
			respondError(w, err)
			return
		}
		period = &p
	}

	vehicles, err := h.rentalSvc.RentedVehicles(r.Context(), period)
	if err != nil {
		respondError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *RentalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.rentalSvc.AllRecords(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []domain.RentalRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *RentalHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	records, err := h.rentalSvc.ActiveRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []domain.RentalRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *RentalHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	records, err := h.rentalSvc.OverdueRentals(r.Context(), time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []domain.RentalRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
