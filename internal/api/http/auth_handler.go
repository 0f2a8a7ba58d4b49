package http

import (
	"net/http"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

// AuthHandler handles login.
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string         `json:"access_token"`
	Renter      *domain.Renter `json:"renter"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		respondBadRequest(w, "username and password are required")
		return
	}

	token, renter, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{AccessToken: token, Renter: renter})
}
