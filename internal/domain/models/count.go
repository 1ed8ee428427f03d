package models

// MarketOrderCount is the ungrouped number of market orders.
type MarketOrderCount struct {
	Count int64 `json:"count" validate:"gte=0" example:"100"`
}

// MarketOrderCountByItem is the number of orders for one item.
type MarketOrderCountByItem struct {
	ItemUniqueName string `json:"item_unique_name" validate:"required" example:"T1_BAG"`
	Count          int64  `json:"count" validate:"gte=0" example:"5"`
}

// MarketOrderCountByLocation is the number of orders at one location.
type MarketOrderCountByLocation struct {
	Location string `json:"location" validate:"required" example:"Caerleon"`
	Count    int64  `json:"count" validate:"gte=0" example:"42"`
}

// MarketOrderCountByAuctionType is the number of offers or requests.
type MarketOrderCountByAuctionType struct {
	AuctionType AuctionType `json:"auction_type" validate:"required" example:"offer"`
	Count       int64       `json:"count" validate:"gte=0" example:"60"`
}

// MarketOrderCountByQualityLevel is the number of orders per quality level.
type MarketOrderCountByQualityLevel struct {
	QualityLevel int32 `json:"quality_level" validate:"gte=0" example:"1"`
	Count        int64 `json:"count" validate:"gte=0" example:"12"`
}

// MarketOrderCountByEnchantmentLevel is the number of orders per enchantment level.
type MarketOrderCountByEnchantmentLevel struct {
	EnchantmentLevel int32 `json:"enchantment_level" validate:"gte=0" example:"2"`
	Count            int64 `json:"count" validate:"gte=0" example:"7"`
}

// MarketOrderCountByUpdatedAt is the number of orders last updated in one time bucket.
type MarketOrderCountByUpdatedAt struct {
	UpdatedAt Timestamp `json:"updated_at" validate:"required" swaggertype:"string" format:"date-time"`
	Count     int64     `json:"count" validate:"gte=0" example:"8"`
}

// MarketOrderCountByCreatedAt is the number of orders created in one time bucket.
type MarketOrderCountByCreatedAt struct {
	CreatedAt Timestamp `json:"created_at" validate:"required" swaggertype:"string" format:"date-time"`
	Count     int64     `json:"count" validate:"gte=0" example:"3"`
}

// MarketOrderCountByUpdatedAtAndLocation pairs an update bucket with a location.
type MarketOrderCountByUpdatedAtAndLocation struct {
	UpdatedAt Timestamp `json:"updated_at" validate:"required" swaggertype:"string" format:"date-time"`
	Location  string    `json:"location" validate:"required" example:"Lymhurst"`
	Count     int64     `json:"count" validate:"gte=0" example:"4"`
}

// MarketOrderCountByCreatedAtAndLocation pairs a creation bucket with a location.
type MarketOrderCountByCreatedAtAndLocation struct {
	CreatedAt Timestamp `json:"created_at" validate:"required" swaggertype:"string" format:"date-time"`
	Location  string    `json:"location" validate:"required" example:"Martlock"`
	Count     int64     `json:"count" validate:"gte=0" example:"2"`
}
