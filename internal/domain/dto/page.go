package dto

import "github.com/guttosm/aodata-web/internal/domain/models"

// Page is the envelope every page route returns: {"props": {...}}.
//
// The template layer reads everything it needs from Props; nothing else is
// sent to the client.
type Page[P any] struct {
	Props P `json:"props"`
}

// DataProps nests a page's aggregates under "data".
type DataProps[T any] struct {
	Data T `json:"data"`
}

// NewDataPage wraps data in the props envelope.
func NewDataPage[T any](data T) *Page[DataProps[T]] {
	return &Page[DataProps[T]]{Props: DataProps[T]{Data: data}}
}

// OverviewData backs the landing page: total, offer and request counts.
type OverviewData struct {
	MarketOrderCount        models.MarketOrderCount `json:"market_order_count"`
	MarketOrderCountOffer   models.MarketOrderCount `json:"market_order_count_offer"`
	MarketOrderCountRequest models.MarketOrderCount `json:"market_order_count_request"`
}

// StatisticsData backs /statistics, loaded with the group_by query convention.
type StatisticsData struct {
	MarketOrderCount                       models.MarketOrderCount                         `json:"market_order_count"`
	MarketOrderCountByLocation             []models.MarketOrderCountByLocation             `json:"market_order_count_by_location"`
	MarketOrderCountByAuctionType          []models.MarketOrderCountByAuctionType          `json:"market_order_count_by_auction_type"`
	MarketOrderCountByUpdatedAt            []models.MarketOrderCountByUpdatedAt            `json:"market_order_count_by_updated_at"`
	MarketOrderCountByCreatedAt            []models.MarketOrderCountByCreatedAt            `json:"market_order_count_by_created_at"`
	MarketOrderCountByUpdatedAtAndLocation []models.MarketOrderCountByUpdatedAtAndLocation `json:"market_order_count_by_updated_at_and_location"`
}

// DevStatisticsData backs /dev/statistics, loaded with the path-segment convention.
type DevStatisticsData struct {
	MarketOrderCount              models.MarketOrderCount                `json:"market_order_count"`
	MarketOrderCountByItem        []models.MarketOrderCountByItem        `json:"market_order_count_by_item"`
	MarketOrderCountByLocation    []models.MarketOrderCountByLocation    `json:"market_order_count_by_location"`
	MarketOrderCountByAuctionType []models.MarketOrderCountByAuctionType `json:"market_order_count_by_auction_type"`
	MarketOrderCountByUpdatedAt   []models.MarketOrderCountByUpdatedAt   `json:"market_order_count_by_updated_at"`
}

// ItemData backs the item detail page.
type ItemData struct {
	Localizations models.Localizations `json:"localizations"`
	MarketOrders  []models.MarketOrder `json:"market_orders"`
}

// SearchData backs the item search page.
type SearchData struct {
	SearchResults []models.SearchResult `json:"search_results"`
}

// SlugProps is passed through from the route parameter untouched.
type SlugProps struct {
	Slug string `json:"slug" example:"about"`
}
