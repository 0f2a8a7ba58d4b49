package domain

import "time"

// RentalRecord is the single authoritative fact about one booking. It lives in
// the rentals ledger; vehicle and renter "histories" are derived views filtered
// by VehicleID or RenterID, so a returned flip is observed everywhere at once.
type RentalRecord struct {
	RentalID  string       `json:"rental_id"`
	VehicleID string       `json:"vehicle_id"`
	RenterID  string       `json:"renter_id"`
	Period    RentalPeriod `json:"period"`
	TotalCost float64      `json:"total_cost"`
	Returned  bool         `json:"returned"`
	CreatedOn time.Time    `json:"created_on"`
}

// AnyOverlap reports whether the period overlaps any unreturned record in the
// slice. Returned records never block a new booking.
func AnyOverlap(records []RentalRecord, p RentalPeriod) bool {
	for i := range records {
		if !records[i].Returned && records[i].Period.Overlaps(p) {
			return true
		}
	}
	return false
}

// ActiveRecords returns the unreturned subset.
func ActiveRecords(records []RentalRecord) []RentalRecord {
	var out []RentalRecord
	for i := range records {
		if !records[i].Returned {
			out = append(out, records[i])
		}
	}
	return out
}

// ReturnedRecords returns the returned subset.
func ReturnedRecords(records []RentalRecord) []RentalRecord {
	var out []RentalRecord
	for i := range records {
		if records[i].Returned {
			out = append(out, records[i])
		}
	}
	return out
}

// OverdueRecords returns the unreturned records whose period end has passed.
func OverdueRecords(records []RentalRecord, now time.Time) []RentalRecord {
	var out []RentalRecord
	for i := range records {
		if !records[i].Returned && records[i].Period.IsOverdue(now) {
			out = append(out, records[i])
		}
	}
	return out
}

// TotalRevenue sums total cost over all records, returned or not.
func TotalRevenue(records []RentalRecord) float64 {
	var sum float64
	for i := range records {
		sum += records[i].TotalCost
	}
	return sum
}

// TotalRentalDays sums billable days over all records.
func TotalRentalDays(records []RentalRecord) int {
	var sum int
	for i := range records {
		sum += records[i].Period.Duration()
	}
	return sum
}
