package model

// Listing is an open offer to sell an Identity at a fixed price.
// At most one active Listing exists per Identity.
type Listing struct {
	IdentityId uint64  `json:"identity_id"`
	Seller     Account `json:"seller"`
	Price      uint64  `json:"price"`
	IsListed   bool    `json:"is_listed"`
}
