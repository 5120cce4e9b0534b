package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordMutation(t *testing.T) {
	c := NewCollector("catalog")

	c.RecordMutation("product", "create")
	c.RecordMutation("product", "create")
	c.RecordMutation("category", "delete")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Mutations.WithLabelValues("product", "create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Mutations.WithLabelValues("category", "delete")))
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	c := NewCollector("catalog")
	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/products/1", "/products/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues(http.MethodGet, "/products/{id}", "404")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector("catalog")
	c.RecordMutation("category", "create")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `catalog_mutations_total{entity="category",operation="create"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
