package domain

import "fmt"

type RenterCategory string

const (
	RenterCategoryIndividual RenterCategory = "INDIVIDUAL"
	RenterCategoryCorporate  RenterCategory = "CORPORATE"
	RenterCategoryStaff      RenterCategory = "STAFF"
)

// ValidRenterCategory reports whether c is one of the closed category set.
func ValidRenterCategory(c RenterCategory) bool {
	switch c {
	case RenterCategoryIndividual, RenterCategoryCorporate, RenterCategoryStaff:
		return true
	}
	return false
}

// Renter is a customer or staff account. Inactive renters keep their history
// but can no longer log in or book.
type Renter struct {
	ID           string         `json:"renter_id"`
	Category     RenterCategory `json:"category"`
	Name         string         `json:"name"`
	ContactInfo  string         `json:"contact_info"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Active       bool           `json:"active"`
	CreatedOn    string         `json:"created_on,omitempty"`
}

// DiscountFactor returns the multiplicative discount for a rental of the given
// duration in days. Individuals get 10% off from 7 days up, corporate accounts
// always get 15% off. Staff pay list price.
func (r *Renter) DiscountFactor(days int) float64 {
	switch r.Category {
	case RenterCategoryIndividual:
		if days >= 7 {
			return 0.9
		}
		return 1.0
	case RenterCategoryCorporate:
		return 0.85
	default:
		return 1.0
	}
}

// Validate checks the invariants account management must uphold.
func (r *Renter) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("renter id is required")
	}
	if !ValidRenterCategory(r.Category) {
		return fmt.Errorf("invalid renter category: %s", r.Category)
	}
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}
