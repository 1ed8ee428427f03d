package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/aodata-web/internal/backend"
	"github.com/guttosm/aodata-web/internal/domain/dto"
	"github.com/guttosm/aodata-web/internal/domain/models"
)

// Fetcher is the fetch capability handed to every loader. *backend.Client
// satisfies it; tests substitute their own.
type Fetcher interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

// PageService loads everything a page needs from the statistics backend.
//
// Every loader issues its fixed set of GET requests concurrently and fails as
// a whole: if any request or decode fails, the first error is returned and no
// partial props are produced.
type PageService interface {
	LoadOverview(ctx context.Context) (*dto.Page[dto.DataProps[dto.OverviewData]], error)
	LoadStatistics(ctx context.Context) (*dto.Page[dto.DataProps[dto.StatisticsData]], error)
	LoadDevStatistics(ctx context.Context) (*dto.Page[dto.DataProps[dto.DevStatisticsData]], error)
	LoadItem(ctx context.Context, uniqueName string, filter ItemFilter) (*dto.Page[dto.DataProps[dto.ItemData]], error)
	LoadSearch(ctx context.Context, query, lang string) (*dto.Page[dto.DataProps[dto.SearchData]], error)
	LoadSlug(ctx context.Context, slug string) (*dto.Page[dto.SlugProps], error)
}

type pageService struct {
	fetch Fetcher
}

func NewPageService(fetch Fetcher) PageService {
	return &pageService{fetch: fetch}
}

// ─── Backend endpoints ────────────────────────────────────

const (
	countPath     = "/api/statistics/orders/count"
	groupedPath   = "/api/statistics/orders"
	devStatsPath  = "/statistics/orders"
	itemsPath     = "/items"
	defaultLimit  = 100
	defaultOffset = 0
)

func countByAuctionPath(t models.AuctionType) string {
	return countPath + "?auction_type=" + url.QueryEscape(string(t))
}

func groupByPath(groups string) string {
	return groupedPath + "?group_by=" + groups
}

// ItemFilter narrows the market orders listed on an item page. Nil fields are
// not sent; Limit and Offset fall back to 100 and 0.
type ItemFilter struct {
	LocationID       string
	AuctionType      models.AuctionType
	QualityLevel     *int32
	EnchantmentLevel *int32
	Limit            *int64
	Offset           *int64
}

func (f ItemFilter) query() url.Values {
	q := url.Values{}
	if f.LocationID != "" {
		q.Set("location_id", f.LocationID)
	}
	if f.AuctionType != "" {
		q.Set("auction_type", string(f.AuctionType))
	}
	if f.QualityLevel != nil {
		q.Set("quality_level", strconv.FormatInt(int64(*f.QualityLevel), 10))
	}
	if f.EnchantmentLevel != nil {
		q.Set("enchantment_level", strconv.FormatInt(int64(*f.EnchantmentLevel), 10))
	}
	limit, offset := int64(defaultLimit), int64(defaultOffset)
	if f.Limit != nil {
		limit = *f.Limit
	}
	if f.Offset != nil {
		offset = *f.Offset
	}
	q.Set("limit", strconv.FormatInt(limit, 10))
	q.Set("offset", strconv.FormatInt(offset, 10))
	return q
}

// ─── Fetch helpers ────────────────────────────────────────

// one schedules GET path on g and decodes the body into *dst.
func one[T any](ctx context.Context, g *errgroup.Group, fetch Fetcher, path string, dst *T) {
	g.Go(func() error {
		body, err := fetch.Get(ctx, path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		v, err := backend.DecodeOne[T](body)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		*dst = v
		return nil
	})
}

// list schedules GET path on g and decodes the body into *dst.
func list[T any](ctx context.Context, g *errgroup.Group, fetch Fetcher, path string, dst *[]T) {
	g.Go(func() error {
		body, err := fetch.Get(ctx, path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		v, err := backend.DecodeList[T](body)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		*dst = v
		return nil
	})
}

// ─── Loaders ──────────────────────────────────────────────

// LoadOverview fetches the total, offer and request order counts.
func (s *pageService) LoadOverview(ctx context.Context) (*dto.Page[dto.DataProps[dto.OverviewData]], error) {
	var data dto.OverviewData
	g, gctx := errgroup.WithContext(ctx)

	one(gctx, g, s.fetch, countPath, &data.MarketOrderCount)
	one(gctx, g, s.fetch, countByAuctionPath(models.AuctionOffer), &data.MarketOrderCountOffer)
	one(gctx, g, s.fetch, countByAuctionPath(models.AuctionRequest), &data.MarketOrderCountRequest)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dto.NewDataPage(data), nil
}

// LoadStatistics fetches the grouped counts using the group_by query convention.
func (s *pageService) LoadStatistics(ctx context.Context) (*dto.Page[dto.DataProps[dto.StatisticsData]], error) {
	var data dto.StatisticsData
	g, gctx := errgroup.WithContext(ctx)

	one(gctx, g, s.fetch, countPath, &data.MarketOrderCount)
	list(gctx, g, s.fetch, groupByPath("location"), &data.MarketOrderCountByLocation)
	list(gctx, g, s.fetch, groupByPath("auction_type"), &data.MarketOrderCountByAuctionType)
	list(gctx, g, s.fetch, groupByPath("updated_at"), &data.MarketOrderCountByUpdatedAt)
	list(gctx, g, s.fetch, groupByPath("created_at"), &data.MarketOrderCountByCreatedAt)
	list(gctx, g, s.fetch, groupByPath("updated_at,location"), &data.MarketOrderCountByUpdatedAtAndLocation)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dto.NewDataPage(data), nil
}

// LoadDevStatistics fetches the grouped counts using the path-segment convention.
func (s *pageService) LoadDevStatistics(ctx context.Context) (*dto.Page[dto.DataProps[dto.DevStatisticsData]], error) {
	var data dto.DevStatisticsData
	g, gctx := errgroup.WithContext(ctx)

	list(gctx, g, s.fetch, devStatsPath+"/item", &data.MarketOrderCountByItem)
	list(gctx, g, s.fetch, devStatsPath+"/location", &data.MarketOrderCountByLocation)
	list(gctx, g, s.fetch, devStatsPath+"/auction_type", &data.MarketOrderCountByAuctionType)
	list(gctx, g, s.fetch, devStatsPath+"/hourly", &data.MarketOrderCountByUpdatedAt)
	one(gctx, g, s.fetch, devStatsPath+"/count", &data.MarketOrderCount)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dto.NewDataPage(data), nil
}

// LoadItem fetches an item's localizations and its filtered market orders.
func (s *pageService) LoadItem(ctx context.Context, uniqueName string, filter ItemFilter) (*dto.Page[dto.DataProps[dto.ItemData]], error) {
	var data dto.ItemData
	base := itemsPath + "/" + url.PathEscape(uniqueName)
	g, gctx := errgroup.WithContext(ctx)

	one(gctx, g, s.fetch, base+"/localizations", &data.Localizations)
	list(gctx, g, s.fetch, base+"/orders?"+filter.query().Encode(), &data.MarketOrders)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dto.NewDataPage(data), nil
}

// LoadSearch looks items up by localized name in the given locale column
// (e.g. "en_us"); an empty lang lets the backend pick its default.
func (s *pageService) LoadSearch(ctx context.Context, query, lang string) (*dto.Page[dto.DataProps[dto.SearchData]], error) {
	var data dto.SearchData
	path := itemsPath + "/" + url.PathEscape(query)
	if lang != "" {
		path += "?lang=" + url.QueryEscape(lang)
	}
	g, gctx := errgroup.WithContext(ctx)

	list(gctx, g, s.fetch, path, &data.SearchResults)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dto.NewDataPage(data), nil
}

// LoadSlug passes the route parameter through without inspecting it.
func (s *pageService) LoadSlug(_ context.Context, slug string) (*dto.Page[dto.SlugProps], error) {
	return &dto.Page[dto.SlugProps]{Props: dto.SlugProps{Slug: slug}}, nil
}
