package model

import "time"

type HouseCategory string

const (
	HouseCategoryApartment HouseCategory = "Apartment"
	HouseCategoryHouse     HouseCategory = "House"
	HouseCategoryStudio    HouseCategory = "Studio"
)

func (c HouseCategory) Valid() bool {
	switch c {
	case HouseCategoryApartment, HouseCategoryHouse, HouseCategoryStudio:
		return true
	}
	return false
}

type OwnershipCategory string

const (
	OwnershipBuy       OwnershipCategory = "Buy"
	OwnershipLongTerm  OwnershipCategory = "LongTerm"
	OwnershipShortTerm OwnershipCategory = "ShortTerm"
)

func (c OwnershipCategory) Valid() bool {
	switch c {
	case OwnershipBuy, OwnershipLongTerm, OwnershipShortTerm:
		return true
	}
	return false
}

// IsLease reports whether the contract is a tenancy rather than a purchase.
func (c OwnershipCategory) IsLease() bool {
	return c == OwnershipLongTerm || c == OwnershipShortTerm
}

// LeaseCategories lists the ownership categories that describe a tenancy.
var LeaseCategories = []OwnershipCategory{OwnershipLongTerm, OwnershipShortTerm}

type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// House carries the derived current owner and tenant names. Both are nil
// when no matching contract exists.
type House struct {
	ID            string        `json:"id"`
	PostNumber    string        `json:"post_number"`
	Address       string        `json:"address"`
	DetailAddress string        `json:"detail_address"`
	Category      HouseCategory `json:"category"`
	CurrentOwner  *string       `json:"current_owner"`
	CurrentTenant *string       `json:"current_tenant"`
}

// Ownership is a contract between a person and a house. Started and Ended are
// calendar dates formatted as YYYY-MM-DD.
type Ownership struct {
	ID       string            `json:"id"`
	OwnerID  string            `json:"owner_id"`
	HouseID  string            `json:"house_id"`
	Category OwnershipCategory `json:"category"`
	Amount   int64             `json:"amount"`
	Started  Date              `json:"started"`
	Ended    *Date             `json:"ended"`
}

type OwnershipFilter struct {
	HouseID string
	OwnerID string
}
