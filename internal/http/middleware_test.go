package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/padelton/internal/http/handlers"
	"github.com/stretchr/testify/assert"
)

func TestParamsMiddleware(t *testing.T) {
	var dryRun bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dryRun = handlers.IsDryRunFromContext(r)
		w.WriteHeader(http.StatusTeapot)
	})
	h := Chain(inner, paramsMiddleware)

	tests := []struct {
		target string
		want   bool
	}{
		{"/x", false},
		{"/x?dry_run=true", true},
		{"/x?dry_run=1", false},
		{"/x?verbose=true&dry_run=true", true},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, http.StatusTeapot, rr.Code)
			assert.Equal(t, tt.want, dryRun)
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }), mw("a"), mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b", "handler"}, order)
}
