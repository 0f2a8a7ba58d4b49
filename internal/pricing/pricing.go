package pricing

import (
	"fmt"

	"vehiclerental-backend/internal/domain"
)

// Per-day helmet fee folded into a motorbike's base rate.
const helmetFeePerDay = 5.0

// Flat logistics fee added to every truck rental. It is applied after the
// surcharge and before the discount factor, so the fee itself is discounted.
// That ordering is load-bearing for existing bookings; do not "fix" it.
const truckLogisticsFee = 20.0

// QuoteBreakdown details how a rental price was assembled.
type QuoteBreakdown struct {
	Days           int     `json:"days"`
	BaseCost       float64 `json:"base_cost"`
	Surcharge      float64 `json:"surcharge_multiplier"`
	FlatFee        float64 `json:"flat_fee"`
	DiscountFactor float64 `json:"discount_factor"`
	TotalCost      float64 `json:"total_cost"`
}

// Quote computes the final rental cost for a vehicle over a period, applying
// the renter-supplied discount factor last. The vehicle's category decides the
// base and surcharge rules; the vehicle knows nothing about the renter.
func Quote(v *domain.Vehicle, period domain.RentalPeriod, discountFactor float64) (float64, error) {
	bd, err := QuoteWithBreakdown(v, period, discountFactor)
	if err != nil {
		return 0, err
	}
	return bd.TotalCost, nil
}

// QuoteWithBreakdown is Quote with the intermediate figures exposed, used by
// the price-preview endpoint.
func QuoteWithBreakdown(v *domain.Vehicle, period domain.RentalPeriod, discountFactor float64) (QuoteBreakdown, error) {
	if discountFactor < 0 || discountFactor > 1 {
		return QuoteBreakdown{}, fmt.Errorf("discount factor %v out of range [0,1]", discountFactor)
	}

	days := period.Duration()
	bd := QuoteBreakdown{Days: days, Surcharge: 1.0, DiscountFactor: discountFactor}

	switch v.Category {
	case domain.VehicleCategoryCar:
		bd.BaseCost = v.DailyRate * float64(days)
		switch {
		case v.NumDoors <= 2:
			bd.Surcharge = 1.10 // sports
		case v.NumDoors <= 4:
			bd.Surcharge = 1.00
		default:
			bd.Surcharge = 1.05 // large
		}

	case domain.VehicleCategoryMotorbike:
		bd.BaseCost = (v.DailyRate + helmetFeePerDay) * float64(days)
		if v.EngineCC >= 600 {
			bd.Surcharge = 1.05
		}

	case domain.VehicleCategoryTruck:
		bd.BaseCost = v.DailyRate * float64(days)
		if v.LoadCapacityTons > 3.0 {
			bd.Surcharge = 1.10
		}
		bd.FlatFee = truckLogisticsFee

	default:
		return QuoteBreakdown{}, fmt.Errorf("unknown vehicle category: %s", v.Category)
	}

	bd.TotalCost = (bd.BaseCost*bd.Surcharge + bd.FlatFee) * discountFactor
	return bd, nil
}
