package model

// CreateItemRequest and ReplaceItemRequest need both fields; pointers let
// validation tell a missing price apart from zero.
type CreateItemRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

type PatchItemRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

type PersonRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

type HouseRequest struct {
	PostNumber    string        `json:"post_number"`
	Address       string        `json:"address"`
	DetailAddress string        `json:"detail_address"`
	Category      HouseCategory `json:"category"`
}

type OwnershipRequest struct {
	OwnerID  string            `json:"owner_id"`
	HouseID  string            `json:"house_id"`
	Category OwnershipCategory `json:"category"`
	Amount   *int64            `json:"amount"`
	Started  *Date             `json:"started"`
	Ended    *Date             `json:"ended"`
}

type ExpireTenancyRequest struct {
	HouseIDs []string `json:"house_ids"`
}

type ExtendOwnershipRequest struct {
	Ended *Date `json:"ended"`
}
