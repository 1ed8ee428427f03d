package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aodata-web/internal/backend"
	"github.com/guttosm/aodata-web/internal/domain/dto"
	"github.com/guttosm/aodata-web/internal/domain/models"
	"github.com/guttosm/aodata-web/internal/middleware"
	"github.com/guttosm/aodata-web/internal/service"
)

// mockPageService returns canned pages and records the arguments it was called with.
type mockPageService struct {
	err        error
	itemName   string
	itemFilter service.ItemFilter
	query      string
	lang       string
}

func (m *mockPageService) LoadOverview(context.Context) (*dto.Page[dto.DataProps[dto.OverviewData]], error) {
	if m.err != nil {
		return nil, m.err
	}
	return dto.NewDataPage(dto.OverviewData{
		MarketOrderCount:        models.MarketOrderCount{Count: 100},
		MarketOrderCountOffer:   models.MarketOrderCount{Count: 60},
		MarketOrderCountRequest: models.MarketOrderCount{Count: 40},
	}), nil
}

func (m *mockPageService) LoadStatistics(context.Context) (*dto.Page[dto.DataProps[dto.StatisticsData]], error) {
	if m.err != nil {
		return nil, m.err
	}
	return dto.NewDataPage(dto.StatisticsData{
		MarketOrderCount:           models.MarketOrderCount{Count: 7},
		MarketOrderCountByLocation: []models.MarketOrderCountByLocation{{Location: "Caerleon", Count: 7}},
	}), nil
}

func (m *mockPageService) LoadDevStatistics(context.Context) (*dto.Page[dto.DataProps[dto.DevStatisticsData]], error) {
	if m.err != nil {
		return nil, m.err
	}
	return dto.NewDataPage(dto.DevStatisticsData{
		MarketOrderCountByItem: []models.MarketOrderCountByItem{{ItemUniqueName: "T1_BAG", Count: 5}},
	}), nil
}

func (m *mockPageService) LoadItem(_ context.Context, name string, f service.ItemFilter) (*dto.Page[dto.DataProps[dto.ItemData]], error) {
	m.itemName, m.itemFilter = name, f
	if m.err != nil {
		return nil, m.err
	}
	return dto.NewDataPage(dto.ItemData{Localizations: models.Localizations{UniqueName: name}}), nil
}

func (m *mockPageService) LoadSearch(_ context.Context, query, lang string) (*dto.Page[dto.DataProps[dto.SearchData]], error) {
	m.query, m.lang = query, lang
	if m.err != nil {
		return nil, m.err
	}
	return dto.NewDataPage(dto.SearchData{SearchResults: []models.SearchResult{}}), nil
}

func (m *mockPageService) LoadSlug(_ context.Context, slug string) (*dto.Page[dto.SlugProps], error) {
	return &dto.Page[dto.SlugProps]{Props: dto.SlugProps{Slug: slug}}, nil
}

var _ service.PageService = (*mockPageService)(nil)

func setupRouterWithMock(s service.PageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	r.Use(middleware.ErrorHandler)
	r.GET("/", h.GetOverview)
	r.GET("/statistics", h.GetStatistics)
	r.GET("/dev/statistics", h.GetDevStatistics)
	r.GET("/items/:unique_name", h.GetItem)
	r.GET("/search/:query", h.GetSearch)
	r.GET("/pages/:slug", h.GetSlug)
	return r
}

func TestPages_TableDriven(t *testing.T) {
	backendDown := &backend.APIError{StatusCode: 503, Message: "Service Unavailable"}

	cases := []struct {
		name   string
		svc    *mockPageService
		path   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "overview success",
			svc:    &mockPageService{},
			path:   "/",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.Page[dto.DataProps[dto.OverviewData]]
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				d := out.Props.Data
				if d.MarketOrderCount.Count != 100 || d.MarketOrderCountOffer.Count != 60 || d.MarketOrderCountRequest.Count != 40 {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "overview backend error",
			svc:    &mockPageService{err: backendDown},
			path:   "/",
			status: http.StatusBadGateway,
		},
		{
			name:   "statistics success",
			svc:    &mockPageService{},
			path:   "/statistics",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.Page[dto.DataProps[dto.StatisticsData]]
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Props.Data.MarketOrderCountByLocation) != 1 {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
		{
			name:   "statistics decode error",
			svc:    &mockPageService{err: &backend.DecodeError{Target: "x", Err: errors.New("bad")}},
			path:   "/statistics",
			status: http.StatusBadGateway,
		},
		{
			name:   "dev statistics network error",
			svc:    &mockPageService{err: errors.New("dial tcp: connection refused")},
			path:   "/dev/statistics",
			status: http.StatusInternalServerError,
		},
		{
			name:   "dev statistics success",
			svc:    &mockPageService{},
			path:   "/dev/statistics",
			status: http.StatusOK,
		},
		{
			name:   "item invalid auction type",
			svc:    &mockPageService{},
			path:   "/items/T4_BAG?auction_type=swap",
			status: http.StatusBadRequest,
		},
		{
			name:   "item invalid quality",
			svc:    &mockPageService{},
			path:   "/items/T4_BAG?quality_level=high",
			status: http.StatusBadRequest,
		},
		{
			name:   "item invalid limit",
			svc:    &mockPageService{},
			path:   "/items/T4_BAG?limit=0",
			status: http.StatusBadRequest,
		},
		{
			name:   "item negative offset",
			svc:    &mockPageService{},
			path:   "/items/T4_BAG?offset=-1",
			status: http.StatusBadRequest,
		},
		{
			name:   "item success",
			svc:    &mockPageService{},
			path:   "/items/T4_BAG?auction_type=OFFER&quality_level=2&limit=5",
			status: http.StatusOK,
		},
		{
			name:   "search unsupported lang",
			svc:    &mockPageService{},
			path:   "/search/bag?lang=xx_yy",
			status: http.StatusBadRequest,
		},
		{
			name:   "search success",
			svc:    &mockPageService{},
			path:   "/search/bag?lang=DE_DE",
			status: http.StatusOK,
		},
		{
			name:   "slug passthrough",
			svc:    &mockPageService{},
			path:   "/pages/about-us",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.Page[dto.SlugProps]
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Props.Slug != "about-us" {
					t.Fatalf("unexpected body: %s", body)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body=%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetItem_PassesFilter(t *testing.T) {
	svc := &mockPageService{}
	r := setupRouterWithMock(svc)
	req := httptest.NewRequest(http.MethodGet, "/items/T4_BAG@1?location_id=3005&auction_type=request&enchantment_level=1&offset=20", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	f := svc.itemFilter
	if svc.itemName != "T4_BAG@1" || f.LocationID != "3005" || f.AuctionType != models.AuctionRequest {
		t.Fatalf("unexpected call: name=%q filter=%+v", svc.itemName, f)
	}
	if f.EnchantmentLevel == nil || *f.EnchantmentLevel != 1 || f.QualityLevel != nil {
		t.Fatalf("unexpected levels: %+v", f)
	}
	if f.Offset == nil || *f.Offset != 20 || f.Limit != nil {
		t.Fatalf("unexpected paging: %+v", f)
	}
}

func TestGetSearch_NormalizesLang(t *testing.T) {
	svc := &mockPageService{}
	r := setupRouterWithMock(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search/sac?lang=FR_FR", nil))
	if w.Code != http.StatusOK || svc.query != "sac" || svc.lang != "fr_fr" {
		t.Fatalf("status=%d query=%q lang=%q", w.Code, svc.query, svc.lang)
	}
}
