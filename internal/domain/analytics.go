package domain

import "time"

// DashboardSummary is the staff dashboard's headline metrics.
type DashboardSummary struct {
	TotalVehicles            int                        `json:"total_vehicles"`
	TotalRenters             int                        `json:"total_renters"`
	TotalRentals             int                        `json:"total_rentals"`
	ActiveRentals            int                        `json:"active_rentals"`
	OverdueRentals           int                        `json:"overdue_rentals"`
	TotalRevenue             float64                    `json:"total_revenue"`
	RevenueByVehicleCategory map[VehicleCategory]float64 `json:"revenue_by_vehicle_category"`
	RevenueByRenterCategory  map[RenterCategory]float64  `json:"revenue_by_renter_category"`
}

// VehicleUsage pairs a vehicle with how often it has been rented.
type VehicleUsage struct {
	Vehicle     Vehicle `json:"vehicle"`
	RentalCount int     `json:"rental_count"`
}

// VehicleAnalytics summarizes one vehicle's rental history.
type VehicleAnalytics struct {
	VehicleID       string  `json:"vehicle_id"`
	TotalRentals    int     `json:"total_rentals"`
	ActiveRentals   int     `json:"active_rentals"`
	ReturnedRentals int     `json:"returned_rentals"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalRentalDays int     `json:"total_rental_days"`
	AvgRentalDays   float64 `json:"avg_rental_days"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// RenterAnalytics summarizes one renter's booking history.
type RenterAnalytics struct {
	RenterID        string  `json:"renter_id"`
	RenterName      string  `json:"renter_name"`
	Category        RenterCategory `json:"category"`
	TotalRentals    int     `json:"total_rentals"`
	ActiveRentals   int     `json:"active_rentals"`
	ReturnedRentals int     `json:"returned_rentals"`
	TotalSpent      float64 `json:"total_spent"`
	TotalRentalDays int     `json:"total_rental_days"`
	AvgRentalCost   float64 `json:"avg_rental_cost"`
	AvgRentalDays   float64 `json:"avg_rental_days"`
}

// ActivityEntry is one rent or return event in the activity log.
type ActivityEntry struct {
	Type      string    `json:"type"` // "rental" or "return"
	At        time.Time `json:"at"`
	RentalID  string    `json:"rental_id"`
	VehicleID string    `json:"vehicle_id"`
	RenterID  string    `json:"renter_id"`
	Cost      float64   `json:"cost"`
	Period    string    `json:"period"`
}
