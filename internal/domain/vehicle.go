package domain

import "fmt"

type VehicleCategory string

const (
	VehicleCategoryCar       VehicleCategory = "CAR"
	VehicleCategoryMotorbike VehicleCategory = "MOTORBIKE"
	VehicleCategoryTruck     VehicleCategory = "TRUCK"
)

// ValidVehicleCategory reports whether c is one of the closed category set.
func ValidVehicleCategory(c VehicleCategory) bool {
	switch c {
	case VehicleCategoryCar, VehicleCategoryMotorbike, VehicleCategoryTruck:
		return true
	}
	return false
}

// Vehicle is a fleet vehicle. Category decides which of the extra fields are
// meaningful: NumDoors for cars, EngineCC for motorbikes, LoadCapacityTons for
// trucks. The other fields are ignored by pricing.
type Vehicle struct {
	ID               string          `json:"vehicle_id"`
	Category         VehicleCategory `json:"category"`
	Make             string          `json:"make"`
	Model            string          `json:"model"`
	Year             int             `json:"year"`
	DailyRate        float64         `json:"daily_rate"`
	NumDoors         int             `json:"num_doors,omitempty"`
	EngineCC         int             `json:"engine_cc,omitempty"`
	LoadCapacityTons float64         `json:"load_capacity_tons,omitempty"`
	CreatedOn        string          `json:"created_on,omitempty"`
}

// Validate checks the invariants fleet management must uphold before a vehicle
// enters the repository.
func (v *Vehicle) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	if !ValidVehicleCategory(v.Category) {
		return fmt.Errorf("invalid vehicle category: %s", v.Category)
	}
	if v.DailyRate <= 0 {
		return fmt.Errorf("daily rate must be positive")
	}
	switch v.Category {
	case VehicleCategoryMotorbike:
		if v.EngineCC < 0 {
			return fmt.Errorf("engine_cc must be non-negative")
		}
	case VehicleCategoryTruck:
		if v.LoadCapacityTons < 0 {
			return fmt.Errorf("load_capacity_tons must be non-negative")
		}
	}
	return nil
}

// VehicleFilter narrows a fleet listing. Zero values mean "no constraint".
type VehicleFilter struct {
	Category VehicleCategory
	Make     string
	MinRate  float64
	MaxRate  float64
}
