package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses. Unknown errors become a
// 500 with a generic message so internals never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	var (
		invalidPeriod *domain.InvalidPeriodError
		vehicleNF     *domain.VehicleNotFoundError
		userNF        *domain.UserNotFoundError
		notAvailable  *domain.VehicleNotAvailableError
		returnNF      *domain.ReturnNotFoundError
		persistence   *domain.PersistenceError
	)

	switch {
	case errors.As(err, &invalidPeriod):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &vehicleNF), errors.As(err, &userNF), errors.As(err, &returnNF):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &notAvailable):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.As(err, &persistence):
		logger.Error("Persistence failure", "error", err)
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: "storage unavailable, please retry"})
	default:
		logger.Error("Unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}
