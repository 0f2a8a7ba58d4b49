package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/security"
	"vehiclerental-backend/internal/service"
)

// Handlers bundles the service dependencies for the HTTP API.
type Handlers struct {
	Auth      service.AuthService
	Rental    service.RentalService
	Fleet     service.FleetService
	User      service.UserService
	Analytics service.AnalyticsService
	Tokens    security.TokenManager
}

// NewRouter builds the API router. Login and the public catalogue need no
// token; every booking endpoint requires one; fleet, account and analytics
// management additionally require the STAFF category.
func NewRouter(h Handlers) *mux.Router {
	authHandler := NewAuthHandler(h.Auth)
	vehicleHandler := NewVehicleHandler(h.Fleet, h.Rental)
	renterHandler := NewRenterHandler(h.User, h.Rental)
	rentalHandler := NewRentalHandler(h.Rental)
	analyticsHandler := NewAnalyticsHandler(h.Analytics)

	authMw := NewAuthMiddleware(h.Tokens)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/vehicles", vehicleHandler.List).Methods("GET")
	api.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods("GET")
	api.HandleFunc("/vehicles/{id}/availability", vehicleHandler.Availability).Methods("GET")

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.RequireAuth)
	authed.HandleFunc("/rentals", rentalHandler.Rent).Methods("POST")
	authed.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods("POST")
	authed.HandleFunc("/rentals/{id}/return", rentalHandler.ReturnByID).Methods("POST")
	authed.HandleFunc("/rentals/return", rentalHandler.ReturnByRenter).Methods("POST")
	authed.HandleFunc("/renters/{id}/rentals", renterHandler.History).Methods("GET")

	// Staff only
	staff := api.NewRoute().Subrouter()
	staff.Use(authMw.RequireAuth, RequireStaff)
	staff.HandleFunc("/vehicles", vehicleHandler.Create).Methods("POST")
	staff.HandleFunc("/vehicles/{id}", vehicleHandler.Update).Methods("PUT")
	staff.HandleFunc("/vehicles/{id}", vehicleHandler.Delete).Methods("DELETE")
	staff.HandleFunc("/vehicles/{id}/rentals", vehicleHandler.History).Methods("GET")

	staff.HandleFunc("/renters", renterHandler.Create).Methods("POST")
	staff.HandleFunc("/renters", renterHandler.List).Methods("GET")
	staff.HandleFunc("/renters/{id}", renterHandler.Get).Methods("GET")
	staff.HandleFunc("/renters/{id}", renterHandler.Update).Methods("PUT")
	staff.HandleFunc("/renters/{id}/password", renterHandler.ChangePassword).Methods("PUT")
	staff.HandleFunc("/renters/{id}", renterHandler.Deactivate).Methods("DELETE")

	staff.HandleFunc("/rentals", rentalHandler.ListAll).Methods("GET")
	staff.HandleFunc("/rentals/active", rentalHandler.ListActive).Methods("GET")
	staff.HandleFunc("/rentals/overdue", rentalHandler.ListOverdue).Methods("GET")
	staff.HandleFunc("/rentals/rented-vehicles", rentalHandler.RentedVehicles).Methods("GET")

	staff.HandleFunc("/analytics/dashboard", analyticsHandler.Dashboard).Methods("GET")
	staff.HandleFunc("/analytics/vehicles/most-rented", analyticsHandler.MostRented).Methods("GET")
	staff.HandleFunc("/analytics/vehicles/least-rented", analyticsHandler.LeastRented).Methods("GET")
	staff.HandleFunc("/analytics/vehicles/{id}", analyticsHandler.VehicleStats).Methods("GET")
	staff.HandleFunc("/analytics/renters/{id}", analyticsHandler.RenterStats).Methods("GET")
	staff.HandleFunc("/analytics/activity", analyticsHandler.Activity).Methods("GET")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return r
}
