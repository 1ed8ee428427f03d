package models

// AuctionType classifies a market order.
type AuctionType string

const (
	// AuctionOffer is a sell order.
	AuctionOffer AuctionType = "offer"
	// AuctionRequest is a buy order.
	AuctionRequest AuctionType = "request"
)

// Valid reports whether a is one of the known auction types.
func (a AuctionType) Valid() bool {
	return a == AuctionOffer || a == AuctionRequest
}

// MarketOrder represents a single marketplace listing as returned by
// GET /items/{unique_name}/orders.
//
// swagger:model MarketOrder
type MarketOrder struct {
	ID               int64       `json:"id" example:"11235813"`
	ItemUniqueName   string      `json:"item_unique_name" validate:"required" example:"T4_BAG"`
	LocationID       string      `json:"location_id" validate:"required" example:"3005"`
	QualityLevel     int32       `json:"quality_level" validate:"gte=0" example:"1"`
	EnchantmentLevel int32       `json:"enchantment_level" validate:"gte=0" example:"0"`
	UnitPriceSilver  int32       `json:"unit_price_silver" validate:"gte=0" example:"2400"`
	Amount           int32       `json:"amount" validate:"gte=0" example:"3"`
	AuctionType      AuctionType `json:"auction_type" validate:"oneof=offer request" example:"offer"`
	ExpiresAt        Timestamp   `json:"expires_at" validate:"required" swaggertype:"string" format:"date-time"`
	UpdatedAt        Timestamp   `json:"updated_at" validate:"required" swaggertype:"string" format:"date-time"`
	CreatedAt        Timestamp   `json:"created_at" validate:"required" swaggertype:"string" format:"date-time"`
}

// Location is a marketplace location (city, outpost, black market).
//
// swagger:model Location
type Location struct {
	ID   string `json:"id" validate:"required" example:"3005"`
	Name string `json:"name" validate:"required" example:"Caerleon"`
}
