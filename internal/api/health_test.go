package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		nilPing bool
		pingErr bool
		path    string
		want    int
	}{
		{name: "healthz ok", path: "/healthz", want: 200},
		{name: "readyz ok", path: "/readyz", want: 200},
		{name: "readyz without backend check", nilPing: true, path: "/readyz", want: 200},
		{name: "readyz degraded", pingErr: true, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ping func(context.Context) error
			if !tc.nilPing {
				ping = func(ctx context.Context) error {
					if _, ok := ctx.Deadline(); !ok {
						t.Errorf("readiness ping should be bounded")
					}
					if tc.pingErr {
						return assertErr{}
					}
					return nil
				}
			}

			r := gin.New()
			NewHealthHandler(ping).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
