package domain

import "fmt"

// InvalidPeriodError reports a malformed period boundary or an end that is not
// strictly after the start.
type InvalidPeriodError struct {
	Value  string
	Reason string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid rental period '%s': %s", e.Value, e.Reason)
}

// VehicleNotFoundError reports a booking or query against an unknown vehicle id.
type VehicleNotFoundError struct {
	VehicleID string
}

func (e *VehicleNotFoundError) Error() string {
	return fmt.Sprintf("vehicle with ID '%s' not found", e.VehicleID)
}

// UserNotFoundError reports a booking or query against an unknown renter id.
type UserNotFoundError struct {
	RenterID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user with ID '%s' not found", e.RenterID)
}

// VehicleNotAvailableError reports a requested period that conflicts with an
// existing unreturned booking on the vehicle.
type VehicleNotAvailableError struct {
	VehicleID string
	Period    RentalPeriod
}

func (e *VehicleNotAvailableError) Error() string {
	return fmt.Sprintf("vehicle '%s' is not available over %s", e.VehicleID, e.Period)
}

// ReturnNotFoundError reports a return request that matched no outstanding rental.
type ReturnNotFoundError struct {
	VehicleID string
	RenterID  string
}

func (e *ReturnNotFoundError) Error() string {
	return fmt.Sprintf("no matching outstanding rental to return for vehicle '%s' and user '%s'", e.VehicleID, e.RenterID)
}

// PersistenceError wraps a repository read/write failure. Callers must treat it
// as "state may be partially updated, verify before retrying".
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
