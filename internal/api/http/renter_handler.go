package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

// RenterHandler exposes renter account management.
type RenterHandler struct {
	userSvc   service.UserService
	rentalSvc service.RentalService
}

func NewRenterHandler(userSvc service.UserService, rentalSvc service.RentalService) *RenterHandler {
	return &RenterHandler{userSvc: userSvc, rentalSvc: rentalSvc}
}

type createRenterRequest struct {
	RenterID    string `json:"renter_id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

func (h *RenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRenterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	renter := &domain.Renter{
		ID:          req.RenterID,
		Category:    domain.RenterCategory(req.Category),
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Username:    req.Username,
	}
	if err := h.userSvc.CreateRenter(r.Context(), renter, req.Password); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, renter)
}

func (h *RenterHandler) Get(w http.ResponseWriter, r *http.Request) {
	renterID := mux.Vars(r)["id"]
	renter, err := h.userSvc.GetRenter(r.Context(), renterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renter)
}

func (h *RenterHandler) List(w http.ResponseWriter, r *http.Request) {
	renters, err := h.userSvc.ListRenters(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if renters == nil {
		renters = []domain.Renter{}
	}
	respondJSON(w, http.StatusOK, renters)
}

type updateRenterRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

func (h *RenterHandler) Update(w http.ResponseWriter, r *http.Request) {
	renterID := mux.Vars(r)["id"]
	var req updateRenterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	renter, err := h.userSvc.UpdateRenter(r.Context(), renterID, req.Name, req.ContactInfo)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, renter)
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (h *RenterHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	renterID := mux.Vars(r)["id"]
	var req changePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.userSvc.ChangePassword(r.Context(), renterID, req.NewPassword); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *RenterHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	renterID := mux.Vars(r)["id"]
	if err := h.userSvc.DeactivateRenter(r.Context(), renterID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// History lists every rental record for one renter. Renters can only read
// their own history; staff can read anyone's.
func (h *RenterHandler) History(w http.ResponseWriter, r *http.Request) {
	renterID := mux.Vars(r)["id"]
	if !CanAccessRenter(r.Context(), renterID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "access denied"})
		return
	}
	records, err := h.rentalSvc.RenterHistory(r.Context(), renterID)
	if err != nil {
		respondError(w, err)
		return
	}
	if records == nil {
		records = []domain.RentalRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
