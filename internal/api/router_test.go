package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aodata-web/internal/backend"
	"github.com/guttosm/aodata-web/internal/domain/dto"
	"github.com/guttosm/aodata-web/internal/service"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(&mockPageService{})
	r := NewRouter(h, RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.Page[dto.DataProps[dto.OverviewData]]
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Props.Data.MarketOrderCount.Count != 100 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockPageService{}), RouterOptions{RateLimitPerMinute: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pages/about", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

// newStatisticsBackend fakes the statistics backend for the overview page.
func newStatisticsBackend(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if r.URL.Path != "/api/statistics/orders/count" {
			http.NotFound(w, r)
			return
		}
		switch r.URL.Query().Get("auction_type") {
		case "offer":
			_, _ = w.Write([]byte(`{"count":6}`))
		case "request":
			_, _ = w.Write([]byte(`{"count":4}`))
		default:
			_, _ = w.Write([]byte(`{"count":10}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		delay   time.Duration
		timeout time.Duration
		path    string
		want    int
		body    string
	}{
		{
			name: "overview through real client",
			path: "/",
			want: http.StatusOK,
			body: `{"props":{"data":{"market_order_count":{"count":10},"market_order_count_offer":{"count":6},"market_order_count_request":{"count":4}}}}`,
		},
		{name: "backend 404 becomes bad gateway", path: "/statistics", want: http.StatusBadGateway},
		{name: "slow backend hits page timeout", path: "/", delay: time.Second, timeout: 50 * time.Millisecond, want: http.StatusGatewayTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newStatisticsBackend(t, tc.delay)
			svc := service.NewPageService(backend.NewClient(srv.URL))
			r := NewRouter(NewHandler(svc), RouterOptions{RequestTimeout: tc.timeout})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d (body=%s)", tc.want, w.Code, w.Body.String())
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
			if tc.want >= 500 {
				var er dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil || er.Message == "" {
					t.Fatalf("expected error response, got %s", w.Body.String())
				}
			}
		})
	}
}
