package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

// VehicleHandler exposes fleet management and the vehicle catalogue.
type VehicleHandler struct {
	fleetSvc  service.FleetService
	rentalSvc service.RentalService
}

func NewVehicleHandler(fleetSvc service.FleetService, rentalSvc service.RentalService) *VehicleHandler {
	return &VehicleHandler{fleetSvc: fleetSvc, rentalSvc: rentalSvc}
}

// List applies optional query filters (category, make, min_rate, max_rate) and,
// when start/end are present, narrows to vehicles available over that period.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.VehicleFilter{
		Category: domain.VehicleCategory(q.Get("category")),
		Make:     q.Get("make"),
	}
	if raw := q.Get("min_rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(w, "invalid min_rate")
			return
		}
		filter.MinRate = v
	}
	if raw := q.Get("max_rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(w, "invalid max_rate")
			return
		}
		filter.MaxRate = v
	}

	var period *domain.RentalPeriod
	if q.Get("start") != "" || q.Get("end") != "" {
		p, err := domain.NewRentalPeriod(q.Get("start"), q.Get("end"))
		if err != nil {
			respondError(w, err)
			return
		}
		period = &p
	}

	vehicles, err := h.rentalSvc.FilterVehicles(r.Context(), filter, period)
	if err != nil {
		respondError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]
	v, err := h.fleetSvc.GetVehicle(r.Context(), vehicleID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if !decodeBody(w, r, &v) {
		return
	}
	if err := h.fleetSvc.AddVehicle(r.Context(), &v); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if !decodeBody(w, r, &v) {
		return
	}
	v.ID = mux.Vars(r)["id"]
	if err := h.fleetSvc.UpdateVehicle(r.Context(), &v); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]
	if err := h.fleetSvc.DeleteVehicle(r.Context(), vehicleID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Availability answers whether one vehicle is free over a period.
func (h *VehicleHandler) Availability(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]
	q := r.URL.Query()

	period, err := domain.NewRentalPeriod(q.Get("start"), q.Get("end"))
	if err != nil {
		respondError(w, err)
		return
	}

	available, err := h.rentalSvc.IsAvailable(r.Context(), vehicleID, period)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id": vehicleID,
		"period":     period,
		"available":  available,
	})
}

// History lists every rental record for one vehicle.
func (h *VehicleHandler) History(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]
	records, err := h.rentalSvc.VehicleHistory(r.Context(), vehicleID)
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []domain.RentalRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
